package db

import "time"

// Treatment describes a treatment page. Slug is the public lookup key and
// must stay unique.
type Treatment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
