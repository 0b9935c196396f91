package db

import "time"

// Project statuses used by the site. Status is informational text, not an
// enum; arbitrary values are tolerated.
const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
)

// Project is a reference project shown in the portfolio.
type Project struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	ShortDescription string     `gorm:"not null" json:"shortDescription"`
	FullDescription  string     `gorm:"type:text" json:"fullDescription,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	Completion       string     `json:"completion,omitempty"`
	Location         string     `json:"location,omitempty"`
	Client           string     `json:"client,omitempty"`
	Status           string     `gorm:"not null;default:completed" json:"status"`
	Services         StringList `json:"services,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
