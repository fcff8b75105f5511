package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/leaderboard", h.GetLeaderboard)
}

func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboardService.Leaderboard(c.UserContext())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, entries)
}
