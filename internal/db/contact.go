package db

import "time"

// Contact holds the site-wide contact details. Singleton.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slot      int       `gorm:"uniqueIndex;not null;default:1" json:"-"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	Location  string    `gorm:"not null" json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
