package memory

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository over the
// in-memory store.
type CategoryRepository struct {
	store *Store
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].Slug == category.Slug {
			return apperrors.AlreadyExists("category", "slug", category.Slug)
		}
	}

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories = append(s.categories, *category)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.categories {
		if s.categories[i].Slug == slug {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
