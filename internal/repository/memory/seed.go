package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// Seed loads the demo catalog used when the server runs without a database.
func (s *Store) Seed(ctx context.Context) error {
	repos := s.Repositories()

	categories := []domain.Category{
		{
			Name:         "Electronics",
			Slug:         "electronics",
			Description:  "Latest electronic gadgets and accessories",
			Image:        "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			GradientFrom: "from-primary",
			GradientTo:   "to-red-700",
		},
		{
			Name:         "Home & Kitchen",
			Slug:         "home-kitchen",
			Description:  "Quality home and kitchen appliances",
			Image:        "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			GradientFrom: "from-blue-600",
			GradientTo:   "to-blue-800",
		},
		{
			Name:         "Fashion",
			Slug:         "fashion",
			Description:  "Trendy fashion items and accessories",
			Image:        "https://images.unsplash.com/photo-1515955656352-a1fa3ffcd111?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			GradientFrom: "from-purple-600",
			GradientTo:   "to-purple-800",
		},
		{
			Name:         "Beauty & Personal Care",
			Slug:         "beauty-personal-care",
			Description:  "High-quality beauty and personal care products",
			Image:        "https://images.unsplash.com/photo-1571371293919-4c74f59b0613?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			GradientFrom: "from-green-600",
			GradientTo:   "to-green-800",
		},
	}
	for i := range categories {
		if err := repos.Categories.Create(ctx, &categories[i]); err != nil {
			return fmt.Errorf("seed category %q: %w", categories[i].Slug, err)
		}
	}

	products := []domain.Product{
		{
			Name:          "Premium Headphones",
			Slug:          "premium-headphones",
			Description:   "High-quality over-ear headphones with noise cancellation",
			Price:         dec("6999"),
			OriginalPrice: decPtr("8500"),
			Image:         "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:    1,
			Featured:      true,
			IsSale:        true,
			Rating:        dec("4.5"),
			ReviewCount:   24,
			Stock:         15,
		},
		{
			Name:        "Smart Watch",
			Slug:        "smart-watch",
			Description: "Latest smart watch with health tracking features",
			Price:       dec("12500"),
			Image:       "https://images.unsplash.com/photo-1546868871-7041f2a55e12?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  1,
			Featured:    true,
			Rating:      dec("5.0"),
			ReviewCount: 42,
			Stock:       28,
		},
		{
			Name:        "Bluetooth Speaker",
			Slug:        "bluetooth-speaker",
			Description: "Portable Bluetooth speaker with rich sound quality",
			Price:       dec("4299"),
			Image:       "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  1,
			Featured:    true,
			IsNew:       true,
			Rating:      dec("4.0"),
			ReviewCount: 18,
			Stock:       35,
		},
		{
			Name:        "Laptop Bag",
			Slug:        "laptop-bag",
			Description: "Stylish and durable laptop bag with multiple compartments",
			Price:       dec("2850"),
			Image:       "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  3,
			Featured:    true,
			Rating:      dec("3.5"),
			ReviewCount: 7,
			Stock:       42,
		},
		{
			Name:        "Wireless Earbuds",
			Slug:        "wireless-earbuds",
			Description: "High-quality wireless earbuds with noise cancellation",
			Price:       dec("3499"),
			Image:       "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  1,
			IsNew:       true,
			Rating:      dec("4.5"),
			ReviewCount: 15,
			Stock:       20,
		},
		{
			Name:        "Smart Home Security Camera",
			Slug:        "smart-home-security-camera",
			Description: "Advanced security camera with motion detection",
			Price:       dec("7899"),
			Image:       "https://images.unsplash.com/photo-1591337676887-a217a6970a8a?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  2,
			IsNew:       true,
			Rating:      dec("4.0"),
			ReviewCount: 8,
			Stock:       12,
		},
		{
			Name:        "Imported Sneakers",
			Slug:        "imported-sneakers",
			Description: "Comfortable and stylish imported sneakers",
			Price:       dec("5200"),
			Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  3,
			IsNew:       true,
			Rating:      dec("5.0"),
			ReviewCount: 32,
			Stock:       18,
		},
		{
			Name:        "Polaroid Camera",
			Slug:        "polaroid-camera",
			Description: "Classic polaroid camera for instant photography",
			Price:       dec("9750"),
			Image:       "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80",
			CategoryID:  1,
			IsNew:       true,
			Rating:      dec("3.0"),
			ReviewCount: 5,
			Stock:       10,
		},
	}
	for i := range products {
		if err := repos.Products.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Slug, err)
		}
	}

	testimonials := []domain.Testimonial{
		{
			CustomerName: "Sarah Kamau",
			Location:     "Nairobi",
			Avatar:       "https://randomuser.me/api/portraits/women/32.jpg",
			Rating:       5,
			Comment:      "I ordered a smart watch and it arrived within 3 days. The quality is exceptional and the price was much better than other retailers. Will definitely shop here again!",
		},
		{
			CustomerName: "James Omondi",
			Location:     "Mombasa",
			Avatar:       "https://randomuser.me/api/portraits/men/54.jpg",
			Rating:       4,
			Comment:      "Great selection of products. I particularly love the kitchen appliances section. The delivery was prompt and the customer service team was very helpful when I had questions.",
		},
		{
			CustomerName: "Elizabeth Wanjiku",
			Location:     "Kisumu",
			Avatar:       "https://randomuser.me/api/portraits/women/67.jpg",
			Rating:       5,
			Comment:      "I've been shopping here for over a year now. Their products are genuine and affordable. The new arrivals section always has the latest gadgets before they hit the local stores!",
		},
	}
	for i := range testimonials {
		if err := repos.Testimonials.Create(ctx, &testimonials[i]); err != nil {
			return fmt.Errorf("seed testimonial for %q: %w", testimonials[i].CustomerName, err)
		}
	}

	return nil
}
