package memory

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// TestimonialRepository implements repository.TestimonialRepository over the
// in-memory store.
type TestimonialRepository struct {
	store *Store
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial.ID = s.nextTestimonialID
	s.nextTestimonialID++
	s.testimonials = append(s.testimonials, *testimonial)
	return nil
}

func (r *TestimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out, nil
}
