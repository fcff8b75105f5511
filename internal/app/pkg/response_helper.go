package pkg

import (
	"errors"
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appError "github.com/wafflepopco/loyalty-core/internal/app/errors"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

// JSONResponse writes a success payload as-is. The API contract exposes bare
// entities and lists, not an envelope.
func JSONResponse[T any](c *fiber.Ctx, data T) error {
	return c.JSON(data)
}

func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *appError.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(models.WebResponse[any]{
			Success: false,
			Message: appErr.Message,
		})
	}

	logrus.Errorf("[%s] %s", reflect.TypeOf(err).String(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(models.WebResponse[any]{
		Success: false,
		Message: "Internal Server Error",
	})
}
