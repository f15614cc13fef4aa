package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateReviewRequest is the JSON request body for submitting a review.
type CreateReviewRequest struct {
	ProductID    int64  `json:"productId" validate:"required,gte=1"`
	CustomerName string `json:"customerName" validate:"required,min=1,max=200"`
	Location     string `json:"location" validate:"max=200"`
	Avatar       string `json:"avatar" validate:"omitempty,url"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"required,max=5000"`
}

// ListProductReviews handles GET /api/products/{id}/reviews. Reviews hang
// off the numeric product ID, not the slug.
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "idOrSlug"))
	if !ok {
		return
	}

	reviews, err := h.service.ListProductReviews(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &service.CreateReviewInput{
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Location:     req.Location,
		Avatar:       req.Avatar,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, review)
}
