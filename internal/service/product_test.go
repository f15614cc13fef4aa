package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newProductTestService(products *mockProductRepository, categories *mockCategoryRepository) *ProductService {
	return NewProductService(products, categories, newTestProducer(), newTestLogger())
}

func catalogFixture() []domain.Product {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Premium Headphones", Slug: "premium-headphones", Price: decimal.RequireFromString("6999"), CategoryID: 1, Featured: true, IsSale: true, CreatedAt: base},
		{ID: 2, Name: "Smart Watch", Slug: "smart-watch", Price: decimal.RequireFromString("12500"), CategoryID: 1, Featured: true, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Wireless Earbuds", Slug: "wireless-earbuds", Price: decimal.RequireFromString("3499"), CategoryID: 1, IsNew: true, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestProductService_ListProducts_All(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	products.On("ListAll", ctx).Return(catalogFixture(), nil)

	got, err := svc.ListProducts(ctx, &ListProductsInput{Sort: catalog.SortPriceLow})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "wireless-earbuds", got[0].Slug)
	products.AssertExpectations(t)
}

func TestProductService_ListProducts_ByCategory(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	categories.On("GetBySlug", ctx, "electronics").Return(&domain.Category{ID: 1, Slug: "electronics"}, nil)
	products.On("ListByCategory", ctx, int64(1)).Return(catalogFixture(), nil)

	got, err := svc.ListProducts(ctx, &ListProductsInput{CategorySlug: "electronics", SaleOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "premium-headphones", got[0].Slug)
	categories.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestProductService_ListProducts_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	categories.On("GetBySlug", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.ListProducts(ctx, &ListProductsInput{CategorySlug: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	products.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_SearchWithPriceBounds(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	products.On("Search", ctx, "smart").Return(catalogFixture(), nil)

	maxPrice := decimal.RequireFromString("10000")
	got, err := svc.ListProducts(ctx, &ListProductsInput{Search: "smart", MaxPrice: &maxPrice})
	require.NoError(t, err)
	// the engine re-applies the search filter on top of the repo result
	require.Len(t, got, 1)
	assert.Equal(t, "smart-watch", got[0].Slug)
	assert.False(t, got[0].Price.GreaterThan(maxPrice))
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	categories.On("GetByID", ctx, int64(1)).Return(&domain.Category{ID: 1}, nil)
	products.On("Create", ctx, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Product)
			p.ID = 9
			p.CreatedAt = time.Now().UTC()
		}).
		Return(nil)

	got, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Desk Lamp Pro",
		Price:      decimal.RequireFromString("1500"),
		CategoryID: 1,
		Stock:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "desk-lamp-pro", got.Slug)
	assert.True(t, got.Rating.IsZero())
	assert.Equal(t, 0, got.ReviewCount)
	products.AssertExpectations(t)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	tests := []struct {
		name  string
		input CreateProductInput
	}{
		{"empty name", CreateProductInput{Price: decimal.NewFromInt(100)}},
		{"negative price", CreateProductInput{Name: "X Lamp", Price: decimal.NewFromInt(-1)}},
		{"negative stock", CreateProductInput{Name: "X Lamp", Price: decimal.NewFromInt(100), Stock: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, &tt.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	categories.On("GetByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Desk Lamp",
		Price:      decimal.NewFromInt(1500),
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestProductService_GetProductBySlug_NotFound(t *testing.T) {
	ctx := context.Background()
	products := new(mockProductRepository)
	categories := new(mockCategoryRepository)
	svc := newProductTestService(products, categories)

	products.On("GetBySlug", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetProductBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
