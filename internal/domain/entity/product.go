package entity

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a catalog entry. Stock is kept non-negative by the store.
// Discount is a percentage in [0,100] applied to Price at display time.
type Product struct {
	ID           string
	Name         string
	Description  string
	Stock        int
	Price        float64
	Discount     float64
	Picture      string
	CategoryID   string
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FinalPrice returns the price after discount.
func (p *Product) FinalPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}
