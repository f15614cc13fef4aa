package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// TestimonialService implements the business logic for testimonials.
type TestimonialService struct {
	repo   repository.TestimonialRepository
	logger *slog.Logger
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, logger *slog.Logger) *TestimonialService {
	return &TestimonialService{
		repo:   repo,
		logger: logger,
	}
}

// CreateTestimonialInput holds the parameters for submitting a testimonial.
type CreateTestimonialInput struct {
	CustomerName string
	Location     string
	Avatar       string
	Rating       int
	Comment      string
}

// ListTestimonials returns all testimonials.
func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

// CreateTestimonial stores a new testimonial.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, input *CreateTestimonialInput) (*domain.Testimonial, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if input.CustomerName == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}

	testimonial := &domain.Testimonial{
		CustomerName: input.CustomerName,
		Location:     input.Location,
		Avatar:       input.Avatar,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.logger.InfoContext(ctx, "testimonial created",
		slog.Int64("testimonial_id", testimonial.ID),
		slog.String("customer", testimonial.CustomerName),
	)
	return testimonial, nil
}
