package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-shop-server/internal/interface/http"
)

// CartModule wires the session-backed cart view.
type CartModule struct {
	Handler *handlers.CartHandler
}

func NewCart(h *handlers.CartHandler) *CartModule {
	return &CartModule{Handler: h}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.GET("/cart", m.Handler.GetCart)
}
