package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// serviceName labels metrics and trace spans for this process.
const serviceName = "storefront"

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Categories    *service.CategoryService
	Products      *service.ProductService
	Reviews       *service.ReviewService
	Testimonials  *service.TestimonialService
	HealthHandler *health.Handler
	CORS          middleware.CORSConfig
	Logger        *slog.Logger
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))

	// Operational endpoints
	r.Get("/health/live", deps.HealthHandler.LivenessHandler())
	r.Get("/health/ready", deps.HealthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	categoryHandler := NewCategoryHandler(deps.Categories, deps.Logger)
	productHandler := NewProductHandler(deps.Products, deps.Logger)
	reviewHandler := NewReviewHandler(deps.Reviews, deps.Logger)
	testimonialHandler := NewTestimonialHandler(deps.Testimonials, deps.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.Get("/{slug}", categoryHandler.GetCategory)
			r.Post("/", categoryHandler.CreateCategory)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Get("/{idOrSlug}", productHandler.GetProduct)
			r.Get("/{idOrSlug}/reviews", reviewHandler.ListProductReviews)
		})

		r.Post("/reviews", reviewHandler.CreateReview)

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", testimonialHandler.ListTestimonials)
			r.Post("/", testimonialHandler.CreateTestimonial)
		})
	})

	return r
}
