package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newReviewTestService(reviews *mockReviewRepository, products *mockProductRepository) *ReviewService {
	return NewReviewService(reviews, products, newTestProducer(), newTestLogger())
}

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	product := &domain.Product{ID: 1, Slug: "premium-headphones", Rating: decimal.RequireFromString("4.5"), ReviewCount: 24}
	products.On("GetByID", ctx, int64(1)).Return(product, nil)
	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Review).ID = 100
		}).
		Return(nil)
	products.On("RecomputeRating", ctx, int64(1)).Return(nil)

	got, err := svc.CreateReview(ctx, &CreateReviewInput{
		ProductID:    1,
		CustomerName: "Sarah Kamau",
		Location:     "Nairobi",
		Rating:       5,
		Comment:      "excellent",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	reviews.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(ctx, &CreateReviewInput{ProductID: 1, CustomerName: "Sarah Kamau", Rating: rating, Comment: "ok"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	}
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_CreateReview_EmptyComment(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	_, err := svc.CreateReview(ctx, &CreateReviewInput{ProductID: 1, CustomerName: "Sarah Kamau", Rating: 4})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_CreateReview_UnknownProductStillCreated(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Review).ID = 101
		}).
		Return(nil)
	products.On("RecomputeRating", ctx, int64(999)).Return(apperrors.ErrNotFound)

	got, err := svc.CreateReview(ctx, &CreateReviewInput{ProductID: 999, CustomerName: "Sarah Kamau", Rating: 4, Comment: "fine"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), got.ID)
	products.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	reviews.On("ListByProduct", ctx, int64(1)).Return([]domain.Review{
		{ID: 1, ProductID: 1, Rating: 5},
	}, nil)

	got, err := svc.ListProductReviews(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReviewService_ListProductReviews_UnknownProductIsEmpty(t *testing.T) {
	ctx := context.Background()
	reviews := new(mockReviewRepository)
	products := new(mockProductRepository)
	svc := newReviewTestService(reviews, products)

	reviews.On("ListByProduct", ctx, int64(999)).Return([]domain.Review{}, nil)

	got, err := svc.ListProductReviews(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, got)
}
