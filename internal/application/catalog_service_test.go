package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-server/internal/domain/repository"
)

type fakeProductRepo struct {
	byID    map[string]*entity.Product
	listErr error
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) ListAll(context.Context) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func TestCatalogService_GetProduct(t *testing.T) {
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Cola", Price: 1.20},
	}}
	svc := NewCatalogService(products, nil)

	p, err := svc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Cola", p.Name)

	_, err = svc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_ListProducts_Error(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{listErr: errors.New("store down")}, nil)

	_, err := svc.ListProducts(context.Background())
	assert.Error(t, err)
}
