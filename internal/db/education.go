package db

import "time"

// Education is an education/training resource entry.
type Education struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   string    `json:"summary"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the uncountable noun as-is.
func (Education) TableName() string { return "education" }
