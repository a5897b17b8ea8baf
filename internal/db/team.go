package db

import "time"

// Team is a clinic team member. Order drives the public display sort.
type Team struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Title     string    `gorm:"not null" json:"title"`
	Bio       string    `json:"bio"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Order     int       `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
