package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness violation (e.g. duplicate slug).
	ErrConflict = errors.New("value already in use")
)

// ContentService provides the uniform CRUD surface shared by every content
// entity, parameterized over the model struct. The per-entity differences
// (list ordering, slug lookup) are configured at construction.
type ContentService[T any] struct {
	db      *gorm.DB
	ordered any
}

// NewContentService creates a service listing records by creation time,
// newest first.
func NewContentService[T any](gdb *gorm.DB) *ContentService[T] {
	return &ContentService[T]{
		db:      gdb,
		ordered: clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true},
	}
}

// NewOrderedContentService creates a service listing records by an explicit
// integer order column, ascending. Used by team members.
func NewOrderedContentService[T any](gdb *gorm.DB, column string) *ContentService[T] {
	return &ContentService[T]{
		db:      gdb,
		ordered: clause.OrderByColumn{Column: clause.Column{Name: column}},
	}
}

// List returns every record of the entity in the configured order.
func (s *ContentService[T]) List() ([]T, error) {
	var items []T
	if err := s.db.Order(s.ordered).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single record or ErrNotFound.
func (s *ContentService[T]) GetByID(id uint) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetBySlug returns a single record keyed by its slug column, or
// ErrNotFound. Only meaningful for entities that carry a slug.
func (s *ContentService[T]) GetBySlug(slug string) (*T, error) {
	var item T
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new record. Uniqueness violations surface as
// ErrConflict.
func (s *ContentService[T]) Create(item *T) error {
	if err := s.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Update applies a partial update; columns missing from fields keep their
// stored values. Returns the updated record.
func (s *ContentService[T]) Update(id uint, fields map[string]any) (*T, error) {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.db.Model(&item).Updates(fields).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			return nil, err
		}
	}

	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a record permanently. ErrNotFound when nothing matched.
func (s *ContentService[T]) Delete(id uint) error {
	var item T
	result := s.db.Delete(&item, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
