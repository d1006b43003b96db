package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/internal/application"
	"github.com/oksasatya/go-shop-server/internal/session"
)

type CartService interface {
	View(ctx context.Context, items []session.CartItem) (*application.CartView, error)
}

type CartHandler struct {
	Svc    CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sess := session.FromContext(c)
	view, err := h.Svc.View(c.Request.Context(), sess.Cart())
	if err != nil {
		render(c, "cart.html", gin.H{"Title": "Cart", "LoadError": true})
		return
	}
	render(c, "cart.html", gin.H{"Title": "Cart", "Cart": view})
}
