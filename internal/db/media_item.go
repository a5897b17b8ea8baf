package db

import "time"

// MediaItem is a video, image, podcast or webinar entry.
type MediaItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	URL         string    `gorm:"column:url" json:"url"`
	MediaURL    string    `gorm:"column:media_url" json:"mediaUrl"`
	Thumbnail   string    `json:"thumbnail"`
	PublishDate string    `gorm:"column:publish_date" json:"publishDate"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
