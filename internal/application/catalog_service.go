package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-server/internal/domain/repository"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService reads the product catalog.
type CatalogService struct {
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewCatalogService(products repo.ProductRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Products: products, Logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.Products.ListAll(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("catalog list failed")
		}
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Error("catalog lookup failed")
		}
		return nil, err
	}
	return p, nil
}
