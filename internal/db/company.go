package db

import "time"

// Company holds the site-wide company profile. At most one row exists;
// Slot pins every upsert to the same sentinel key.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slot      int       `gorm:"uniqueIndex;not null;default:1" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Tagline   string    `gorm:"not null" json:"tagline"`
	Mission   string    `gorm:"not null" json:"mission"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
