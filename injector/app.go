package injector

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/deliveries"
	"github.com/wafflepopco/loyalty-core/internal/app/middlewares"
	"github.com/wafflepopco/loyalty-core/pkg/ratelimit"
)

// Application is the dependency container built by wire.
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	UserHandler         *deliveries.UserHandler
	AdminHandler        *deliveries.AdminHandler
	RewardHandler       *deliveries.RewardHandler
	RedemptionHandler   *deliveries.RedemptionHandler
	LeaderboardHandler  *deliveries.LeaderboardHandler
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes mounts every handler on the given router, normally the
// /api group.
func (app *Application) RegisterRoutes(router fiber.Router) {
	router.Use(app.RateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	app.HealthHandler.RegisterRoutes(router)
	app.UserHandler.RegisterRoutes(router)
	app.AdminHandler.RegisterRoutes(router)
	app.RewardHandler.RegisterRoutes(router)
	app.RedemptionHandler.RegisterRoutes(router)
	app.LeaderboardHandler.RegisterRoutes(router)
}
