package db

import "time"

// Service is a service offering in the company catalog.
type Service struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	ShortDescription string     `json:"shortDescription,omitempty"`
	FullDescription  string     `gorm:"type:text" json:"fullDescription,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	Benefits         StringList `json:"benefits,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
