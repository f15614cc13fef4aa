package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create inserts a new category and assigns its ID.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetBySlug retrieves a category by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// ListAll returns every category in insertion order.
	ListAll(ctx context.Context) ([]domain.Category, error)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// Create inserts a new product and assigns its ID and creation time.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// ListAll returns every product in insertion order.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// ListByCategory returns products owned by the given category. Unknown
	// categories yield an empty slice, not an error.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)

	// ListFeatured returns products with the featured flag set.
	ListFeatured(ctx context.Context) ([]domain.Product, error)

	// ListNew returns products with the new-arrival flag set.
	ListNew(ctx context.Context) ([]domain.Product, error)

	// ListSale returns products with the sale flag set.
	ListSale(ctx context.Context) ([]domain.Product, error)

	// Search returns products whose name or description contains the query,
	// case-insensitively. An empty query matches all products.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// RecomputeRating rereads the product's reviews and stores the derived
	// rating (mean, one decimal place) and review count.
	RecomputeRating(ctx context.Context, productID int64) error
}

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	// Create inserts a new review and assigns its ID and creation time.
	Create(ctx context.Context, review *domain.Review) error

	// ListByProduct returns all reviews for the given product.
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	// Create inserts a new testimonial and assigns its ID.
	Create(ctx context.Context, testimonial *domain.Testimonial) error

	// ListAll returns every testimonial in insertion order.
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
}

// Store bundles the four catalog repositories behind one backend.
type Store struct {
	Categories   CategoryRepository
	Products     ProductRepository
	Reviews      ReviewRepository
	Testimonials TestimonialRepository
}
