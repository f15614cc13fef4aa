package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// Kafka topics for storefront catalog events.
const (
	TopicProductCreated = "storefront.product.created"
	TopicReviewCreated  = "storefront.review.created"
)

const (
	AggregateTypeProduct = "product"
	AggregateTypeReview  = "review"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront"

// ProductCreatedData is the payload for a product.created event.
type ProductCreatedData struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	CategoryID    int64            `json:"category_id"`
	Featured      bool             `json:"featured"`
	IsNew         bool             `json:"is_new"`
	IsSale        bool             `json:"is_sale"`
	Stock         int              `json:"stock"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ReviewCreatedData is the payload for a review.created event. It carries the
// recomputed product aggregate so consumers need not reread the catalog.
type ReviewCreatedData struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	Rating        int             `json:"rating"`
	ProductRating decimal.Decimal `json:"product_rating"`
	ReviewCount   int             `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Producer publishes catalog domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		CategoryID:    product.CategoryID,
		Featured:      product.Featured,
		IsNew:         product.IsNew,
		IsSale:        product.IsSale,
		Stock:         product.Stock,
		CreatedAt:     product.CreatedAt,
	}

	return p.publish(ctx, TopicProductCreated, strconv.FormatInt(product.ID, 10), AggregateTypeProduct, data)
}

// PublishReviewCreated publishes a review.created event with the product's
// refreshed rating aggregate.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review, product *domain.Product) error {
	data := ReviewCreatedData{
		ID:            review.ID,
		ProductID:     review.ProductID,
		Rating:        review.Rating,
		ProductRating: product.Rating,
		ReviewCount:   product.ReviewCount,
		CreatedAt:     review.CreatedAt,
	}

	return p.publish(ctx, TopicReviewCreated, strconv.FormatInt(review.ProductID, 10), AggregateTypeReview, data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	evt, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		evt.WithCorrelationID(id)
	}

	if err := p.kafka.Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published catalog event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}
