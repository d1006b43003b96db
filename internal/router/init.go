package router

import (
	"github.com/oksasatya/go-shop-server/internal/application"
	"github.com/oksasatya/go-shop-server/internal/container"
	pginfra "github.com/oksasatya/go-shop-server/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-shop-server/internal/interface/http"
	"github.com/oksasatya/go-shop-server/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	products := pginfra.NewProductRepository(pool)

	accounts := application.NewAccountService(users, logger, container.GetRabbitPub())
	catalog := application.NewCatalogService(products, logger)
	cart := application.NewCartService(products)

	r.Add(modules.NewAccount(handlers.NewAccountHandler(accounts, logger)))
	r.Add(modules.NewCatalog(handlers.NewCatalogHandler(catalog, logger)))
	r.Add(modules.NewCart(handlers.NewCartHandler(cart, logger)))
	r.Add(modules.NewMetrics())
}
