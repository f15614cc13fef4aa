package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/slug"
)

// CategoryService implements the business logic for category operations.
type CategoryService struct {
	repo   repository.CategoryRepository
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name         string
	Description  string
	Image        string
	GradientFrom string
	GradientTo   string
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug retrieves a category by its slug.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, categorySlug string) (*domain.Category, error) {
	category, err := s.repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return category, nil
}

// CreateCategory creates a new category with a slug derived from its name.
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("category name is required")
	}

	category := &domain.Category{
		Name:         input.Name,
		Slug:         slug.Make(input.Name),
		Description:  input.Description,
		Image:        input.Image,
		GradientFrom: input.GradientFrom,
		GradientTo:   input.GradientTo,
	}
	if category.Slug == "" {
		return nil, apperrors.InvalidInput("category name must contain at least one letter or digit")
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.Int64("category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return category, nil
}
