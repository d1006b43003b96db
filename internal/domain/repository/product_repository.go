package repository

import (
	"context"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
)

// ProductRepository defines the interface for catalog store operations.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
