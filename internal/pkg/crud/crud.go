package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("item not found")

// Service is a store-backed CRUD service over one entity type. Resource
// handlers compose it with their own hooks (owner injection, filters,
// cross-reference checks) instead of overriding a base controller.
type Service[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Service[T] {
	return &Service[T]{db: db}
}

// List returns all items matching the given column filters. Callers decide
// which query parameters are allowed for their resource.
func (s *Service[T]) List(ctx context.Context, filters map[string]any) ([]T, error) {
	items := []T{}
	q := s.db.WithContext(ctx)
	if len(filters) > 0 {
		q = q.Where(filters)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *Service[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update applies the non-zero fields of changes to the stored item and
// returns the record as persisted afterwards.
func (s *Service[T]) Update(ctx context.Context, id int64, changes *T) (*T, error) {
	var existing T
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&existing).Updates(changes).Error; err != nil {
		return nil, err
	}

	var updated T
	if err := s.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a row with the given id is present.
func (s *Service[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
