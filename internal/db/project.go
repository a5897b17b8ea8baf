package db

import "time"

// Project is a clinic project or initiative.
type Project struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Link      string    `json:"link"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
