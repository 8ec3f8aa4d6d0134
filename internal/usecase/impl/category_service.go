package impl

import (
	"context"
	"log/slog"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"
)

const categoryField = "category"

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ResolveLeaf maps a category name onto a leaf category.
func (srv *categoryService) ResolveLeaf(ctx context.Context, repo repository.CategoryRepository, name string) (*entity.Category, error) {
	category, err := repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewValidationError(categoryField, "Category doesn't exist.")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if !category.IsLeaf {
		return nil, domainerrors.NewValidationError(categoryField, "Category should be at lowest level.")
	}

	return category, nil
}

// ListCategories returns the whole taxonomy.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
