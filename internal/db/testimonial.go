package db

import "time"

// Testimonial is a customer quote with a star rating.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Title     string    `gorm:"not null" json:"title"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Rating    int       `gorm:"not null" json:"rating"`
	HalfStar  bool      `gorm:"default:false" json:"halfStar"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
