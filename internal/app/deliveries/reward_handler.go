package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
)

type RewardHandler struct {
	rewardService *services.RewardService
}

func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

func (h *RewardHandler) RegisterRoutes(router fiber.Router) {
	rewardGroup := router.Group("/rewards")

	rewardGroup.Get("/", h.ListRewards)
	rewardGroup.Post("/redeem", h.Redeem)
}

func (h *RewardHandler) ListRewards(c *fiber.Ctx) error {
	return pkg.JSONResponse(c, h.rewardService.ListRewards())
}

func (h *RewardHandler) Redeem(c *fiber.Ctx) error {
	var req models.RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	resp, err := h.rewardService.Redeem(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, resp)
}
