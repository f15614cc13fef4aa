package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateProductRequest is the JSON request body for creating a product.
// Prices travel as quoted decimal strings or JSON numbers; both decode.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=500"`
	Description   string           `json:"description" validate:"max=5000"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image" validate:"omitempty,url"`
	CategoryID    int64            `json:"categoryId" validate:"gte=0"`
	Featured      bool             `json:"featured"`
	IsNew         bool             `json:"isNew"`
	IsSale        bool             `json:"isSale"`
	Stock         int              `json:"stock" validate:"gte=0"`
}

// ListProducts handles GET /api/products. The query parameters category
// (slug), featured, new, sale, search, min_price, max_price, and sort all
// compose; an unknown category slug is a 404.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := service.ListProductsInput{
		CategorySlug: q.Get("category"),
		FeaturedOnly: q.Get("featured") == "true",
		NewOnly:      q.Get("new") == "true",
		SaleOnly:     q.Get("sale") == "true",
		Search:       q.Get("search"),
	}

	sortOrder, ok := catalog.ParseSort(q.Get("sort"))
	if !ok {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Message: "sort must be one of: featured, newest, price-low, price-high, name-asc, name-desc",
			Code:    "INVALID_PARAMETER",
		})
		return
	}
	input.Sort = sortOrder

	if v := q.Get("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil || price.IsNegative() {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
				Message: "min_price must be a non-negative number",
				Code:    "INVALID_PARAMETER",
			})
			return
		}
		input.MinPrice = &price
	}
	if v := q.Get("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil || price.IsNegative() {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
				Message: "max_price must be a non-negative number",
				Code:    "INVALID_PARAMETER",
			})
			return
		}
		input.MaxPrice = &price
	}

	products, err := h.service.ListProducts(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{idOrSlug}. A numeric path segment
// looks the product up by ID, anything else by slug.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "idOrSlug")

	var (
		product *domain.Product
		err     error
	)
	if id, perr := strconv.ParseInt(idOrSlug, 10, 64); perr == nil && id > 0 {
		product, err = h.service.GetProduct(r.Context(), id)
	} else {
		product, err = h.service.GetProductBySlug(r.Context(), idOrSlug)
	}
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
		Featured:      req.Featured,
		IsNew:         req.IsNew,
		IsSale:        req.IsSale,
		Stock:         req.Stock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, product)
}
