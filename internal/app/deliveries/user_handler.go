package deliveries

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userGroup := router.Group("/users")

	userGroup.Post("/register", h.Register)
	userGroup.Post("/login", h.Login)
	userGroup.Get("/:id", h.GetUser)
	userGroup.Get("/", h.ListUsers)
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req models.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, user)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req models.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	user, err := h.userService.Login(c.UserContext(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, user)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, user)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.JSONResponse(c, users)
}
