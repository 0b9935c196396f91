package storage

import "github.com/dmapsite/internal/db"

// TestimonialInput carries the client-supplied testimonial fields. Rating
// is a whole number of stars; HalfStar adds a visual half star on top.
type TestimonialInput struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Quote     string `json:"quote" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	HalfStar  bool   `json:"halfStar"`
	AvatarURL string `json:"avatarUrl"`
}

// TestimonialPatch is a partial testimonial update.
type TestimonialPatch struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Quote     *string `json:"quote" binding:"omitempty,min=1"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	HalfStar  *bool   `json:"halfStar"`
	AvatarURL *string `json:"avatarUrl"`
}

func (p TestimonialPatch) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Quote != nil {
		updates["quote"] = *p.Quote
	}
	if p.Rating != nil {
		updates["rating"] = *p.Rating
	}
	if p.HalfStar != nil {
		updates["half_star"] = *p.HalfStar
	}
	if p.AvatarURL != nil {
		updates["avatar_url"] = *p.AvatarURL
	}
	return updates
}

// GetAllTestimonials returns every testimonial.
func (s *Storage) GetAllTestimonials() ([]db.Testimonial, error) {
	var rows []db.Testimonial
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, translate("list testimonials", err)
	}
	return rows, nil
}

// CreateTestimonial inserts a testimonial.
func (s *Storage) CreateTestimonial(in TestimonialInput) (*db.Testimonial, error) {
	row := db.Testimonial{
		Name:      in.Name,
		Title:     in.Title,
		Quote:     in.Quote,
		Rating:    in.Rating,
		HalfStar:  in.HalfStar,
		AvatarURL: in.AvatarURL,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create testimonial", err)
	}
	return &row, nil
}

// UpdateTestimonial applies a partial update and returns the updated row,
// or ErrNotFound when the id does not exist.
func (s *Storage) UpdateTestimonial(id uint, patch TestimonialPatch) (*db.Testimonial, error) {
	var row db.Testimonial
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, translate("get testimonial", err)
	}
	if err := s.applyPatch("update testimonial", &row, patch.changes()); err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteTestimonial removes a testimonial. Idempotent.
func (s *Storage) DeleteTestimonial(id uint) error {
	return s.deleteByID("delete testimonial", &db.Testimonial{}, id)
}
