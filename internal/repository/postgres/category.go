package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	db database.DBTX
}

// NewCategoryRepository creates a PostgreSQL-backed category repository.
func NewCategoryRepository(db database.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category; the database assigns its ID.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, image, gradient_from, gradient_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		c.Name, c.Slug, c.Description, c.Image, c.GradientFrom, c.GradientTo,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("category", "slug", c.Slug)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image, gradient_from, gradient_to
		FROM categories
		WHERE id = $1`

	return r.scanCategory(ctx, query, id)
}

// GetBySlug retrieves a category by its slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image, gradient_from, gradient_to
		FROM categories
		WHERE slug = $1`

	return r.scanCategory(ctx, query, slug)
}

// ListAll returns all categories ordered by ID.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image, gradient_from, gradient_to
		FROM categories
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.GradientFrom, &c.GradientTo); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) scanCategory(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.GradientFrom, &c.GradientTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
