package repository

import (
	"context"
	"errors"

	"quicksell/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category carries the requested name.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for reading the listing taxonomy.
type CategoryRepository interface {
	// FindByName retrieves a category by its exact name, with IsLeaf populated.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves the whole taxonomy ordered by name, with IsLeaf populated.
	FindAll(ctx context.Context) ([]*entity.Category, error)
}
