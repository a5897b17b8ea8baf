package db

import "time"

// News is a news article.
type News struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName avoids gorm singularising "news".
func (News) TableName() string { return "news" }
