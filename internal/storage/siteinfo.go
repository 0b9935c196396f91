package storage

import (
	"time"

	"github.com/dmapsite/internal/db"
	"gorm.io/gorm/clause"
)

// The Company, About and Contact tables hold at most one row each. Every
// write targets the same sentinel slot, so concurrent first-writes collapse
// into a single ON CONFLICT upsert instead of racing a select-then-insert.
const singletonSlot = 1

// CompanyInput carries the client-supplied company profile fields.
type CompanyInput struct {
	Name    string `json:"name" binding:"required"`
	Tagline string `json:"tagline" binding:"required"`
	Mission string `json:"mission" binding:"required"`
}

// AboutInput carries the client-supplied about fields.
type AboutInput struct {
	Description string        `json:"description" binding:"required"`
	Domains     db.StringList `json:"domains" binding:"required"`
}

// ContactInput carries the client-supplied contact details.
type ContactInput struct {
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Location string `json:"location" binding:"required"`
}

func singletonConflict(assignments map[string]interface{}) clause.OnConflict {
	assignments["updated_at"] = time.Now()
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.Assignments(assignments),
	}
}

// GetCompany returns the company profile, or ErrNotFound before first write.
func (s *Storage) GetCompany() (*db.Company, error) {
	var row db.Company
	if err := s.db.Where("slot = ?", singletonSlot).First(&row).Error; err != nil {
		return nil, translate("get company", err)
	}
	return &row, nil
}

// UpdateCompany upserts the single company row.
func (s *Storage) UpdateCompany(in CompanyInput) (*db.Company, error) {
	row := db.Company{
		Slot:    singletonSlot,
		Name:    in.Name,
		Tagline: in.Tagline,
		Mission: in.Mission,
	}
	conflict := singletonConflict(map[string]interface{}{
		"name":    in.Name,
		"tagline": in.Tagline,
		"mission": in.Mission,
	})
	if err := s.db.Clauses(conflict).Create(&row).Error; err != nil {
		return nil, translate("upsert company", err)
	}
	return s.GetCompany()
}

// GetAbout returns the about text, or ErrNotFound before first write.
func (s *Storage) GetAbout() (*db.About, error) {
	var row db.About
	if err := s.db.Where("slot = ?", singletonSlot).First(&row).Error; err != nil {
		return nil, translate("get about", err)
	}
	return &row, nil
}

// UpdateAbout upserts the single about row.
func (s *Storage) UpdateAbout(in AboutInput) (*db.About, error) {
	row := db.About{
		Slot:        singletonSlot,
		Description: in.Description,
		Domains:     in.Domains,
	}
	conflict := singletonConflict(map[string]interface{}{
		"description": in.Description,
		"domains":     in.Domains,
	})
	if err := s.db.Clauses(conflict).Create(&row).Error; err != nil {
		return nil, translate("upsert about", err)
	}
	return s.GetAbout()
}

// GetContact returns the contact details, or ErrNotFound before first write.
func (s *Storage) GetContact() (*db.Contact, error) {
	var row db.Contact
	if err := s.db.Where("slot = ?", singletonSlot).First(&row).Error; err != nil {
		return nil, translate("get contact", err)
	}
	return &row, nil
}

// UpdateContact upserts the single contact row.
func (s *Storage) UpdateContact(in ContactInput) (*db.Contact, error) {
	row := db.Contact{
		Slot:     singletonSlot,
		Phone:    in.Phone,
		Email:    in.Email,
		Location: in.Location,
	}
	conflict := singletonConflict(map[string]interface{}{
		"phone":    in.Phone,
		"email":    in.Email,
		"location": in.Location,
	})
	if err := s.db.Clauses(conflict).Create(&row).Error; err != nil {
		return nil, translate("upsert contact", err)
	}
	return s.GetContact()
}
