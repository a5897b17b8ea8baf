package db

import "time"

// Faq is a frequently asked question. Order drives the public display sort.
type Faq struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Question  string    `gorm:"not null" json:"question"`
	Answer    string    `gorm:"not null" json:"answer"`
	Category  string    `json:"category"`
	Order     int       `gorm:"default:0" json:"order"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
