package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
)

// TestimonialRepository implements repository.TestimonialRepository using
// PostgreSQL.
type TestimonialRepository struct {
	db database.DBTX
}

// NewTestimonialRepository creates a PostgreSQL-backed testimonial repository.
func NewTestimonialRepository(db database.DBTX) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// Create inserts a new testimonial; the database assigns its ID.
func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (customer_name, location, avatar, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		t.CustomerName, t.Location, t.Avatar, t.Rating, t.Comment,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

// ListAll returns all testimonials ordered by ID.
func (r *TestimonialRepository) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	query := `
		SELECT id, customer_name, location, avatar, rating, comment
		FROM testimonials
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]domain.Testimonial, 0)
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.Location, &t.Avatar, &t.Rating, &t.Comment); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return testimonials, nil
}
