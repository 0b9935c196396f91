package storage

import "github.com/dmapsite/internal/db"

// ServiceInput carries the client-supplied service fields.
type ServiceInput struct {
	Title            string        `json:"title" binding:"required"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	ImageURL         string        `json:"imageUrl"`
	Benefits         db.StringList `json:"benefits"`
}

// ServicePatch is a partial service update. Absent fields stay untouched;
// present fields are validated against their insert-time constraints.
type ServicePatch struct {
	Title            *string        `json:"title" binding:"omitempty,min=1"`
	ShortDescription *string        `json:"shortDescription"`
	FullDescription  *string        `json:"fullDescription"`
	ImageURL         *string        `json:"imageUrl"`
	Benefits         *db.StringList `json:"benefits"`
}

func (p ServicePatch) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.ShortDescription != nil {
		updates["short_description"] = *p.ShortDescription
	}
	if p.FullDescription != nil {
		updates["full_description"] = *p.FullDescription
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}
	if p.Benefits != nil {
		updates["benefits"] = *p.Benefits
	}
	return updates
}

// GetAllServices returns every service offering.
func (s *Storage) GetAllServices() ([]db.Service, error) {
	var rows []db.Service
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, translate("list services", err)
	}
	return rows, nil
}

// GetService returns one service, or ErrNotFound.
func (s *Storage) GetService(id uint) (*db.Service, error) {
	var row db.Service
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, translate("get service", err)
	}
	return &row, nil
}

// CreateService inserts a service offering.
func (s *Storage) CreateService(in ServiceInput) (*db.Service, error) {
	row := db.Service{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		ImageURL:         in.ImageURL,
		Benefits:         in.Benefits,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create service", err)
	}
	return &row, nil
}

// UpdateService applies a partial update and returns the updated row, or
// ErrNotFound when the id does not exist.
func (s *Storage) UpdateService(id uint, patch ServicePatch) (*db.Service, error) {
	row, err := s.GetService(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPatch("update service", row, patch.changes()); err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteService removes a service offering. Idempotent.
func (s *Storage) DeleteService(id uint) error {
	return s.deleteByID("delete service", &db.Service{}, id)
}
