package domain

import "time"

// Review is a customer review attached to a single product. Rating is an
// integer number of stars from 1 to 5.
type Review struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"productId"`
	CustomerName string    `json:"customerName"`
	Location     string    `json:"location"`
	Avatar       string    `json:"avatar"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
