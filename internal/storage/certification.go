package storage

import "github.com/dmapsite/internal/db"

// CertificationInput carries the client-supplied certification fields.
type CertificationInput struct {
	Name string `json:"name" binding:"required"`
}

// GetAllCertifications returns every certification.
func (s *Storage) GetAllCertifications() ([]db.Certification, error) {
	var rows []db.Certification
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, translate("list certifications", err)
	}
	return rows, nil
}

// CreateCertification inserts a certification. A duplicate name yields
// ErrDuplicate.
func (s *Storage) CreateCertification(in CertificationInput) (*db.Certification, error) {
	row := db.Certification{Name: in.Name}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create certification", err)
	}
	return &row, nil
}

// DeleteCertification removes a certification. Idempotent.
func (s *Storage) DeleteCertification(id uint) error {
	return s.deleteByID("delete certification", &db.Certification{}, id)
}
