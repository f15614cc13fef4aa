package memory

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// ReviewRepository implements repository.ReviewRepository over the in-memory
// store.
type ReviewRepository struct {
	store *Store
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.nextReviewID
	s.nextReviewID++
	review.CreatedAt = s.now().UTC()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Review, 0)
	for i := range s.reviews {
		if s.reviews[i].ProductID == productID {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}
