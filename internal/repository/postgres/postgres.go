// Package postgres provides the relational store backend on top of pgx. All
// repositories take a database.DBTX rather than a concrete pool so tests can
// substitute pgxmock.
package postgres

import (
	"strings"

	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/database"
)

// New bundles the PostgreSQL repositories over one connection source.
func New(db database.DBTX) repository.Store {
	return repository.Store{
		Categories:   NewCategoryRepository(db),
		Products:     NewProductRepository(db),
		Reviews:      NewReviewRepository(db),
		Testimonials: NewTestimonialRepository(db),
	}
}

// productColumns is the shared select list; scan order in scanProduct must
// match it.
const productColumns = `id, name, slug, description, price, original_price, image,
	category_id, featured, is_new, is_sale, rating, review_count, stock, created_at`

// isUniqueViolation checks for a PostgreSQL unique constraint violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
