package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals that the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

// Storage is the single access point to persisted site content.
type Storage struct {
	db *gorm.DB
}

// New creates a Storage backed by the given gorm handle.
func New(gdb *gorm.DB) *Storage {
	return &Storage{db: gdb}
}

// translate maps gorm errors onto the storage error kinds so callers can
// branch on absence vs. conflict without importing gorm.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteByID removes a row by primary key. Deleting a missing id is a no-op.
func (s *Storage) deleteByID(op string, model interface{}, id uint) error {
	return translate(op, s.db.Delete(model, id).Error)
}

// applyPatch writes the supplied fields onto row. UpdatedAt refreshes even
// when the patch is empty.
func (s *Storage) applyPatch(op string, row interface{}, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return translate(op, s.db.Model(row).Update("updated_at", time.Now()).Error)
	}
	return translate(op, s.db.Model(row).Updates(updates).Error)
}
