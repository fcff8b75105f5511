//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"

	"github.com/wafflepopco/loyalty-core/internal/app/deliveries"
	"github.com/wafflepopco/loyalty-core/internal/app/middlewares"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
	"github.com/wafflepopco/loyalty-core/internal/infrastructures"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.LoadConfig,
	infrastructures.NewStore,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	infrastructures.NewRewardCatalog,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewUserService,
	services.NewAdminService,
	services.NewRewardService,
	services.NewRedemptionService,
	services.NewLeaderboardService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewUserHandler,
	deliveries.NewAdminHandler,
	deliveries.NewRewardHandler,
	deliveries.NewRedemptionHandler,
	deliveries.NewLeaderboardHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
