package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders unhandled errors as an HTML error page. Server errors
// are logged with the request path.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong. Please try again later."

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		renderErr := c.Status(code).Render("error", fiber.Map{
			"Title":   "Error",
			"Status":  code,
			"Message": message,
		})
		if renderErr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
