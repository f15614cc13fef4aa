package postgres

import (
	"context"
	"fmt"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	db database.DBTX
}

// NewReviewRepository creates a PostgreSQL-backed review repository.
func NewReviewRepository(db database.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review; the database assigns its ID and creation time.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (product_id, customer_name, location, avatar, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		review.ProductID,
		review.CustomerName,
		review.Location,
		review.Avatar,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByProduct returns all reviews for a product in submission order,
// matching the ordering the in-memory store yields.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	query := `
		SELECT id, product_id, customer_name, location, avatar, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.CustomerName,
			&review.Location,
			&review.Avatar,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
