package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/slug"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		producer:   producer,
		logger:     logger,
	}
}

// ListProductsInput holds the composable listing filters. All populated
// filters apply together.
type ListProductsInput struct {
	CategorySlug string
	FeaturedOnly bool
	NewOnly      bool
	SaleOnly     bool
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         catalog.Sort
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	CategoryID    int64
	Featured      bool
	IsNew         bool
	IsSale        bool
	Stock         int
}

// ListProducts returns products matching the input filters, sorted per the
// requested order. An unknown category slug is an error rather than an empty
// result, so clients can distinguish a bad link from an empty category.
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) ([]domain.Product, error) {
	query := catalog.Query{
		FeaturedOnly: input.FeaturedOnly,
		NewOnly:      input.NewOnly,
		SaleOnly:     input.SaleOnly,
		Search:       input.Search,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		Sort:         input.Sort,
	}

	var (
		products []domain.Product
		err      error
	)
	switch {
	case input.CategorySlug != "":
		category, cerr := s.categories.GetBySlug(ctx, input.CategorySlug)
		if cerr != nil {
			if errors.Is(cerr, apperrors.ErrNotFound) {
				return nil, apperrors.NotFound("category", input.CategorySlug)
			}
			return nil, fmt.Errorf("resolve category slug: %w", cerr)
		}
		query.CategoryIDs = []int64{category.ID}
		products, err = s.products.ListByCategory(ctx, category.ID)
	case input.Search != "":
		products, err = s.products.Search(ctx, input.Search)
	default:
		products, err = s.products.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return catalog.Apply(products, query), nil
}

// GetProductBySlug retrieves a product by its slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	product, err := s.products.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// CreateProduct creates a new product. The slug derives from the name, the
// rating aggregate starts at zero, and the owning category must exist at
// creation time even though it may be removed later.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Price.IsNegative() {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if input.OriginalPrice != nil && input.OriginalPrice.IsNegative() {
		return nil, apperrors.InvalidInput("original price must not be negative")
	}
	if input.Stock < 0 {
		return nil, apperrors.InvalidInput("stock must not be negative")
	}
	if input.CategoryID != 0 {
		if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.InvalidInput("category does not exist")
			}
			return nil, fmt.Errorf("check category: %w", err)
		}
	}

	product := &domain.Product{
		Name:          input.Name,
		Slug:          slug.Make(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		CategoryID:    input.CategoryID,
		Featured:      input.Featured,
		IsNew:         input.IsNew,
		IsSale:        input.IsSale,
		Rating:        decimal.Zero,
		Stock:         input.Stock,
	}
	if product.Slug == "" {
		return nil, apperrors.InvalidInput("product name must contain at least one letter or digit")
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", product.ID),
		slog.String("slug", product.Slug),
	)
	return product, nil
}
