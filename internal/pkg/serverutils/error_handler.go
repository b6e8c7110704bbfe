package serverutils

import (
	"errors"

	"studywise-client/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into ErrorBody
// responses. *fiber.Error keeps its status; anything else is a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code == fiber.StatusNotFound && ctx.Route().Path == "/" {
				message = "Endpoint not found"
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("stub", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  message,
			})
		}
		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}
