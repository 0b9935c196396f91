package db

import "time"

// BlogPost is a published article. Content is markdown; rendering happens
// at the handler layer.
type BlogPost struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Slug      string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title     string     `gorm:"not null" json:"title"`
	Date      time.Time  `gorm:"not null" json:"date"`
	Excerpt   string     `gorm:"not null" json:"excerpt"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Author    string     `gorm:"not null" json:"author"`
	Tags      StringList `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
