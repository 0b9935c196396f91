package storage

import "github.com/dmapsite/internal/db"

// UserInput carries the fields for a new account. Password must already be
// a bcrypt hash; hashing is the caller's concern.
type UserInput struct {
	Username string
	Password string
	Role     string
}

// GetUser returns one account by id, or ErrNotFound.
func (s *Storage) GetUser(id uint) (*db.User, error) {
	var row db.User
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return &row, nil
}

// GetUserByUsername returns one account by username, or ErrNotFound.
func (s *Storage) GetUserByUsername(username string) (*db.User, error) {
	var row db.User
	if err := s.db.Where("username = ?", username).First(&row).Error; err != nil {
		return nil, translate("get user by username", err)
	}
	return &row, nil
}

// CreateUser inserts an account. A duplicate username yields ErrDuplicate.
func (s *Storage) CreateUser(in UserInput) (*db.User, error) {
	role := in.Role
	if role == "" {
		role = "user"
	}
	row := db.User{Username: in.Username, Password: in.Password, Role: role}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create user", err)
	}
	return &row, nil
}
