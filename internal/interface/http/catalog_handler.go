package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/internal/application"
	"github.com/oksasatya/go-shop-server/internal/domain/entity"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}

type CatalogHandler struct {
	Svc    CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

func (h *CatalogHandler) Home(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		render(c, "home.html", gin.H{"Title": "Home", "LoadError": true})
		return
	}
	render(c, "home.html", gin.H{"Title": "Home", "Products": products})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		render(c, "products.html", gin.H{"Title": "Products", "LoadError": true})
		return
	}
	render(c, "products.html", gin.H{"Title": "Products", "Products": products})
}

func (h *CatalogHandler) ProductDetail(c *gin.Context) {
	p, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
			return
		}
		render(c, "products.html", gin.H{"Title": "Products", "LoadError": true})
		return
	}
	render(c, "product_detail.html", gin.H{"Title": p.Name, "Product": p})
}
