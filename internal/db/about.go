package db

import "time"

// About holds the site-wide about text and the list of work domains.
// Singleton, same sentinel mechanism as Company.
type About struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Slot        int        `gorm:"uniqueIndex;not null;default:1" json:"-"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Domains     StringList `gorm:"not null" json:"domains"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
