// Package memory provides the in-memory store backend. It keeps all catalog
// data in slices guarded by a single RWMutex and assigns sequential IDs, which
// matches the relational backend's BIGSERIAL behavior closely enough for the
// two to be swapped via configuration.
package memory

import (
	"sync"
	"time"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

// Store is the shared state behind the in-memory repositories. Slices keep
// insertion order, which listing operations rely on.
type Store struct {
	mu sync.RWMutex

	categories   []domain.Category
	products     []domain.Product
	reviews      []domain.Review
	testimonials []domain.Testimonial

	nextCategoryID    int64
	nextProductID     int64
	nextReviewID      int64
	nextTestimonialID int64

	now func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		nextCategoryID:    1,
		nextProductID:     1,
		nextReviewID:      1,
		nextTestimonialID: 1,
		now:               time.Now,
	}
}

// Repositories returns the repository bundle backed by this store.
func (s *Store) Repositories() repository.Store {
	return repository.Store{
		Categories:   &CategoryRepository{store: s},
		Products:     &ProductRepository{store: s},
		Reviews:      &ReviewRepository{store: s},
		Testimonials: &TestimonialRepository{store: s},
	}
}
