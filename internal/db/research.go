package db

import "time"

// Research is a published research entry.
type Research struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the plural used by the public API.
func (Research) TableName() string { return "researches" }
