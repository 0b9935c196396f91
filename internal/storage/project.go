package storage

import "github.com/dmapsite/internal/db"

// ProjectInput carries the client-supplied project fields. Status defaults
// to "completed" when omitted.
type ProjectInput struct {
	Title            string        `json:"title" binding:"required"`
	ShortDescription string        `json:"shortDescription" binding:"required"`
	FullDescription  string        `json:"fullDescription"`
	ImageURL         string        `json:"imageUrl"`
	Completion       string        `json:"completion"`
	Location         string        `json:"location"`
	Client           string        `json:"client"`
	Status           string        `json:"status"`
	Services         db.StringList `json:"services"`
}

// ProjectPatch is a partial project update.
type ProjectPatch struct {
	Title            *string        `json:"title" binding:"omitempty,min=1"`
	ShortDescription *string        `json:"shortDescription" binding:"omitempty,min=1"`
	FullDescription  *string        `json:"fullDescription"`
	ImageURL         *string        `json:"imageUrl"`
	Completion       *string        `json:"completion"`
	Location         *string        `json:"location"`
	Client           *string        `json:"client"`
	Status           *string        `json:"status" binding:"omitempty,min=1"`
	Services         *db.StringList `json:"services"`
}

func (p ProjectPatch) changes() map[string]interface{} {
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
	if p.Completion != nil {
		updates["completion"] = *p.Completion
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.Client != nil {
		updates["client"] = *p.Client
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.Services != nil {
		updates["services"] = *p.Services
	}
	return updates
}

// GetAllProjects returns every project, optionally narrowed to an exact
// status match when status is non-empty.
func (s *Storage) GetAllProjects(status string) ([]db.Project, error) {
	query := s.db
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var rows []db.Project
	if err := query.Find(&rows).Error; err != nil {
		return nil, translate("list projects", err)
	}
	return rows, nil
}

// GetProject returns one project, or ErrNotFound.
func (s *Storage) GetProject(id uint) (*db.Project, error) {
	var row db.Project
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, translate("get project", err)
	}
	return &row, nil
}

// CreateProject inserts a project.
func (s *Storage) CreateProject(in ProjectInput) (*db.Project, error) {
	status := in.Status
	if status == "" {
		status = db.ProjectStatusCompleted
	}
	row := db.Project{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		ImageURL:         in.ImageURL,
		Completion:       in.Completion,
		Location:         in.Location,
		Client:           in.Client,
		Status:           status,
		Services:         in.Services,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create project", err)
	}
	return &row, nil
}

// UpdateProject applies a partial update and returns the updated row, or
// ErrNotFound when the id does not exist.
func (s *Storage) UpdateProject(id uint, patch ProjectPatch) (*db.Project, error) {
	row, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPatch("update project", row, patch.changes()); err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteProject removes a project. Idempotent.
func (s *Storage) DeleteProject(id uint) error {
	return s.deleteByID("delete project", &db.Project{}, id)
}
