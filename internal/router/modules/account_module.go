package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-shop-server/internal/container"
	handlers "github.com/oksasatya/go-shop-server/internal/interface/http"
	"github.com/oksasatya/go-shop-server/internal/interface/middleware"
)

// AccountModule wires the signup/login HTTP surface:
// GET/POST /login, GET/POST /signup. The mutating routes sit behind a
// per-IP limiter to slow credential stuffing and signup floods.
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccount(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/login", m.Handler.GetLogin)
	rg.POST("/login", limiter, m.Handler.PostLogin)
	rg.GET("/signup", m.Handler.GetSignup)
	rg.POST("/signup", limiter, m.Handler.PostSignup)
}
