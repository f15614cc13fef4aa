package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// TestimonialHandler handles HTTP requests for testimonial endpoints.
type TestimonialHandler struct {
	service *service.TestimonialService
	logger  *slog.Logger
}

// NewTestimonialHandler creates a new testimonial HTTP handler.
func NewTestimonialHandler(svc *service.TestimonialService, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateTestimonialRequest is the JSON request body for submitting a testimonial.
type CreateTestimonialRequest struct {
	CustomerName string `json:"customerName" validate:"required,min=1,max=200"`
	Location     string `json:"location" validate:"max=200"`
	Avatar       string `json:"avatar" validate:"omitempty,url"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"max=5000"`
}

// ListTestimonials handles GET /api/testimonials.
func (h *TestimonialHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, testimonials)
}

// CreateTestimonial handles POST /api/testimonials.
func (h *TestimonialHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), &service.CreateTestimonialInput{
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
	httputil.WriteJSON(w, http.StatusCreated, testimonial)
}
