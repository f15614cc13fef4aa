package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product; the database assigns its ID and creation time.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (name, slug, description, price, original_price, image,
			category_id, featured, is_new, is_sale, rating, review_count, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	var originalPrice decimal.NullDecimal
	if p.OriginalPrice != nil {
		originalPrice = decimal.NewNullDecimal(*p.OriginalPrice)
	}

	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		originalPrice,
		p.Image,
		p.CategoryID,
		p.Featured,
		p.IsNew,
		p.IsSale,
		p.Rating,
		p.ReviewCount,
		p.Stock,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("product", "slug", p.Slug)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	return r.scanProduct(ctx, query, id)
}

// GetBySlug retrieves a product by its slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE slug = $1`, productColumns)
	return r.scanProduct(ctx, query, slug)
}

// ListAll returns all products ordered by ID.
func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListByCategory returns products in the given category.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category_id = $1 ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query, categoryID)
}

// ListFeatured returns products flagged as featured.
func (r *ProductRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE featured ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListNew returns products flagged as new arrivals.
func (r *ProductRepository) ListNew(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_new ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListSale returns products flagged as on sale.
func (r *ProductRepository) ListSale(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE is_sale ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query)
}

// Search returns products whose name or description contains the query,
// case-insensitively. An empty query matches everything.
func (r *ProductRepository) Search(ctx context.Context, search string) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE name ILIKE '%%' || $1 || '%%' OR description ILIKE '%%' || $1 || '%%'
		ORDER BY id`, productColumns)
	return r.queryProducts(ctx, query, search)
}

// RecomputeRating rereads the product's reviews and stores the derived
// aggregate: mean rating rounded to one decimal place and the review count.
func (r *ProductRepository) RecomputeRating(ctx context.Context, productID int64) error {
	query := `
		UPDATE products SET
			rating = COALESCE((SELECT round(avg(rating)::numeric, 1) FROM reviews WHERE product_id = $1), 0),
			review_count = (SELECT count(*) FROM reviews WHERE product_id = $1)
		WHERE id = $1`

	ct, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("recompute product rating: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) scanProduct(ctx context.Context, query string, arg any) (*domain.Product, error) {
	p, err := scanProductRow(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// scanProductRow scans one row in productColumns order.
func scanProductRow(row pgx.Row) (*domain.Product, error) {
	var (
		p             domain.Product
		originalPrice decimal.NullDecimal
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&originalPrice,
		&p.Image,
		&p.CategoryID,
		&p.Featured,
		&p.IsNew,
		&p.IsSale,
		&p.Rating,
		&p.ReviewCount,
		&p.Stock,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalPrice.Valid {
		p.OriginalPrice = &originalPrice.Decimal
	}
	return &p, nil
}
