package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
)

type RedemptionHandler struct {
	redemptionService *services.RedemptionService
}

func NewRedemptionHandler(redemptionService *services.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{redemptionService: redemptionService}
}

func (h *RedemptionHandler) RegisterRoutes(router fiber.Router) {
	redemptionGroup := router.Group("/redemptions")

	redemptionGroup.Get("/", h.ListRedemptions)
	redemptionGroup.Get("/user/:id", h.ListUserRedemptions)
	redemptionGroup.Post("/mark-claimed", h.MarkClaimed)
}

func (h *RedemptionHandler) ListRedemptions(c *fiber.Ctx) error {
	redemptions, err := h.redemptionService.ListRedemptions(c.UserContext())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, redemptions)
}

func (h *RedemptionHandler) ListUserRedemptions(c *fiber.Ctx) error {
	userID := c.Params("id")

	redemptions, err := h.redemptionService.ListUserRedemptions(c.UserContext(), userID)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, redemptions)
}

func (h *RedemptionHandler) MarkClaimed(c *fiber.Ctx) error {
	var req models.MarkClaimedRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	resp, err := h.redemptionService.MarkClaimed(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, resp)
}
