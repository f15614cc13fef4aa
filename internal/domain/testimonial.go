package domain

// Testimonial is a storefront-wide customer quote, not tied to any product.
type Testimonial struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Location     string `json:"location"`
	Avatar       string `json:"avatar"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}
