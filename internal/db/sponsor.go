package db

import "time"

// Sponsor is a partner or sponsor entry shown on the site.
type Sponsor struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	LogoURL     string    `gorm:"column:logo_url" json:"logoUrl"`
	Website     string    `json:"website"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
