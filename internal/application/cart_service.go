package application

import (
	"context"
	"errors"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-server/internal/domain/repository"
	"github.com/oksasatya/go-shop-server/internal/session"
)

// CartLine is a cart item resolved against the catalog.
type CartLine struct {
	Product  *entity.Product
	Quantity int
	Subtotal float64
}

type CartView struct {
	Lines []CartLine
	Total float64
}

// CartService resolves session cart items into priced lines.
type CartService struct {
	Products repo.ProductRepository
}

func NewCartService(products repo.ProductRepository) *CartService {
	return &CartService{Products: products}
}

// View prices each cart line with its discount applied. Lines whose
// product no longer exists are dropped rather than failing the page.
func (s *CartService) View(ctx context.Context, items []session.CartItem) (*CartView, error) {
	view := &CartView{}
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		p, err := s.Products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			return nil, err
		}
		sub := p.FinalPrice() * float64(it.Quantity)
		view.Lines = append(view.Lines, CartLine{Product: p, Quantity: it.Quantity, Subtotal: sub})
		view.Total += sub
	}
	return view, nil
}
