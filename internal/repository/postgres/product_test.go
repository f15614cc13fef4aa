package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newProductTestFixture(t *testing.T) (*ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewProductRepository(mock), mock
}

func sampleProduct() *domain.Product {
	originalPrice := decimal.RequireFromString("8500")
	return &domain.Product{
		ID:            1,
		Name:          "Premium Headphones",
		Slug:          "premium-headphones",
		Description:   "High-quality over-ear headphones with noise cancellation",
		Price:         decimal.RequireFromString("6999"),
		OriginalPrice: &originalPrice,
		Image:         "https://example.com/headphones.jpg",
		CategoryID:    1,
		Featured:      true,
		IsSale:        true,
		Rating:        decimal.RequireFromString("4.5"),
		ReviewCount:   24,
		Stock:         15,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

// productTestColumns mirrors productColumns; scan order must match.
func productTestColumns() []string {
	return []string{
		"id", "name", "slug", "description", "price", "original_price", "image",
		"category_id", "featured", "is_new", "is_sale", "rating", "review_count",
		"stock", "created_at",
	}
}

func productRow(p *domain.Product) *pgxmock.Rows {
	var originalPrice decimal.NullDecimal
	if p.OriginalPrice != nil {
		originalPrice = decimal.NewNullDecimal(*p.OriginalPrice)
	}
	return pgxmock.NewRows(productTestColumns()).AddRow(
		p.ID, p.Name, p.Slug, p.Description, p.Price, originalPrice, p.Image,
		p.CategoryID, p.Featured, p.IsNew, p.IsSale, p.Rating, p.ReviewCount,
		p.Stock, p.CreatedAt,
	)
}

func TestProductRepository_Create(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	p := sampleProduct()
	p.ID = 0

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(
			p.Name, p.Slug, p.Description, p.Price, decimal.NewNullDecimal(*p.OriginalPrice),
			p.Image, p.CategoryID, p.Featured, p.IsNew, p.IsSale, p.Rating,
			p.ReviewCount, p.Stock,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), p.CreatedAt))

	err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_DuplicateSlug(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	p := sampleProduct()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists), "expected ErrAlreadyExists, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetBySlug(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	p := sampleProduct()

	mock.ExpectQuery("SELECT .+ FROM products WHERE slug =").
		WithArgs(p.Slug).
		WillReturnRows(productRow(p))

	got, err := repo.GetBySlug(context.Background(), p.Slug)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	require.NotNil(t, got.OriginalPrice)
	assert.True(t, got.OriginalPrice.Equal(*p.OriginalPrice))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM products WHERE id =").
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Search(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	p := sampleProduct()

	mock.ExpectQuery("SELECT .+ FROM products\\s+WHERE name ILIKE").
		WithArgs("headphones").
		WillReturnRows(productRow(p))

	got, err := repo.Search(context.Background(), "headphones")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "premium-headphones", got[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_RecomputeRating(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products SET").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.RecomputeRating(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_RecomputeRating_UnknownProduct(t *testing.T) {
	repo, mock := newProductTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products SET").
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.RecomputeRating(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
