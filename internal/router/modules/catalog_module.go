package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-shop-server/internal/interface/http"
)

// CatalogModule wires the home page and the product catalog views.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalog(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/products/all", m.Handler.ListProducts)
	rg.GET("/products/:id", m.Handler.ProductDetail)
}
