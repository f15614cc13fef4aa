package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// ProductRepository implements repository.ProductRepository over the
// in-memory store.
type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Slug == product.Slug {
			return apperrors.AlreadyExists("product", "slug", product.Slug)
		}
	}

	product.ID = s.nextProductID
	s.nextProductID++
	product.CreatedAt = s.now().UTC()
	s.products = append(s.products, *product)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].Slug == slug {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(*domain.Product) bool { return true })
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return r.list(func(p *domain.Product) bool { return p.CategoryID == categoryID })
}

func (r *ProductRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(p *domain.Product) bool { return p.Featured })
}

func (r *ProductRepository) ListNew(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(p *domain.Product) bool { return p.IsNew })
}

func (r *ProductRepository) ListSale(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(p *domain.Product) bool { return p.IsSale })
}

func (r *ProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return r.list(func(p *domain.Product) bool { return catalog.MatchesSearch(p, query) })
}

func (r *ProductRepository) RecomputeRating(ctx context.Context, productID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}

	total := decimal.Zero
	count := 0
	for i := range s.reviews {
		if s.reviews[i].ProductID == productID {
			total = total.Add(decimal.NewFromInt(int64(s.reviews[i].Rating)))
			count++
		}
	}

	if count == 0 {
		s.products[idx].Rating = decimal.Zero
		s.products[idx].ReviewCount = 0
		return nil
	}

	s.products[idx].Rating = total.Div(decimal.NewFromInt(int64(count))).Round(1)
	s.products[idx].ReviewCount = count
	return nil
}

func (r *ProductRepository) list(keep func(*domain.Product) bool) ([]domain.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for i := range s.products {
		if keep(&s.products[i]) {
			out = append(out, s.products[i])
		}
	}
	return out, nil
}
