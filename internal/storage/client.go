package storage

import "github.com/dmapsite/internal/db"

// ClientInput carries the client-supplied customer fields.
type ClientInput struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
}

// GetAllClients returns every customer.
func (s *Storage) GetAllClients() ([]db.Client, error) {
	var rows []db.Client
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, translate("list clients", err)
	}
	return rows, nil
}

// CreateClient inserts a customer. A duplicate name yields ErrDuplicate.
func (s *Storage) CreateClient(in ClientInput) (*db.Client, error) {
	row := db.Client{Name: in.Name, LogoURL: in.LogoURL}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create client", err)
	}
	return &row, nil
}

// DeleteClient removes a customer. Idempotent.
func (s *Storage) DeleteClient(id uint) error {
	return s.deleteByID("delete client", &db.Client{}, id)
}
