package usecase

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/domain/repository"
)

// CategoryUsecase resolves category references by name and exposes the taxonomy.
type CategoryUsecase interface {
	// ResolveLeaf looks a category up by exact name and requires it to be a leaf.
	ResolveLeaf(ctx context.Context, repo repository.CategoryRepository, name string) (*entity.Category, error)

	// ListCategories returns the whole taxonomy ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
