package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// ReviewService implements the business logic for product reviews.
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviews repository.ReviewRepository,
	products repository.ProductRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// CreateReviewInput holds the parameters for submitting a review.
type CreateReviewInput struct {
	ProductID    int64
	CustomerName string
	Location     string
	Avatar       string
	Rating       int
	Comment      string
}

// ListProductReviews returns all reviews for a product. A product with no
// reviews, or an unknown product, yields an empty slice.
func (s *ReviewService) ListProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview stores a review and refreshes the product's rating aggregate:
// after the call the product's rating is the mean of all its review ratings
// rounded to one decimal place, and its review count matches the review set.
// A review referencing an unknown product is still stored; the recompute
// step is then a no-op.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if input.CustomerName == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}
	if input.Comment == "" {
		return nil, apperrors.InvalidInput("comment is required")
	}

	review := &domain.Review{
		ProductID:    input.ProductID,
		CustomerName: input.CustomerName,
		Location:     input.Location,
		Avatar:       input.Avatar,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.products.RecomputeRating(ctx, input.ProductID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("recompute product rating: %w", err)
		}
		// Dangling product reference: the review stands on its own.
		s.logger.WarnContext(ctx, "review created for unknown product",
			slog.Int64("review_id", review.ID),
			slog.Int64("product_id", input.ProductID),
		)
		return review, nil
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("reload product: %w", err)
	}

	if err := s.producer.PublishReviewCreated(ctx, review, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.Int64("review_id", review.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "review created",
		slog.Int64("review_id", review.ID),
		slog.Int64("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)
	return review, nil
}
