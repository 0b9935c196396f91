package storage

import "github.com/dmapsite/internal/db"

// ContactSubmissionInput carries one contact-form message.
type ContactSubmissionInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// NewsletterSubscriberInput carries one newsletter signup.
type NewsletterSubscriberInput struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateContactSubmission appends a contact-form message.
func (s *Storage) CreateContactSubmission(in ContactSubmissionInput) (*db.ContactSubmission, error) {
	row := db.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create contact submission", err)
	}
	return &row, nil
}

// GetAllContactSubmissions returns every message, newest first.
func (s *Storage) GetAllContactSubmissions() ([]db.ContactSubmission, error) {
	var rows []db.ContactSubmission
	if err := s.db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, translate("list contact submissions", err)
	}
	return rows, nil
}

// CreateNewsletterSubscriber appends a signup. A duplicate email yields
// ErrDuplicate.
func (s *Storage) CreateNewsletterSubscriber(in NewsletterSubscriberInput) (*db.NewsletterSubscriber, error) {
	row := db.NewsletterSubscriber{Email: in.Email}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create newsletter subscriber", err)
	}
	return &row, nil
}

// GetAllNewsletterSubscribers returns every signup.
func (s *Storage) GetAllNewsletterSubscribers() ([]db.NewsletterSubscriber, error) {
	var rows []db.NewsletterSubscriber
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, translate("list newsletter subscribers", err)
	}
	return rows, nil
}
