package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/middlewares"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
	"github.com/wafflepopco/loyalty-core/pkg/ratelimit"
)

type AdminHandler struct {
	adminService        *services.AdminService
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewAdminHandler(adminService *services.AdminService, rateLimitMiddleware *middlewares.RateLimitMiddleware) *AdminHandler {
	return &AdminHandler{
		adminService:        adminService,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminGroup := router.Group("/admin")

	adminGroup.Post("/login", h.rateLimitMiddleware.LimitByIP(ratelimit.AdminLoginLimit), h.Login)
	adminGroup.Post("/add-points", h.AddPoints)
	adminGroup.Post("/create-user", h.CreateUser)
	adminGroup.Get("/transactions", h.ListTransactions)
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	resp, err := h.adminService.Login(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, resp)
}

func (h *AdminHandler) AddPoints(c *fiber.Ctx) error {
	var req models.AddPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	resp, err := h.adminService.AddPoints(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, resp)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req models.AdminCreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.adminService.CreateUserWithPoints(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, user)
}

func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.adminService.ListTransactions(c.UserContext())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, transactions)
}
