package db

import "time"

// Innovation is an innovation/technology entry.
type Innovation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Team      string    `json:"team"`
	StartDate string    `gorm:"column:start_date" json:"startDate"`
	Image     string    `json:"image"`
	Link      string    `json:"link"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}
