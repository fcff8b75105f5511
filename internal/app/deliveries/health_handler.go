package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.GetRoot)
	router.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetRoot(c *fiber.Ctx) error {
	return pkg.JSONResponse(c, fiber.Map{"message": "The Waffle Pop Co API"})
}

func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return pkg.JSONResponse(c, fiber.Map{"status": "ok"})
}
