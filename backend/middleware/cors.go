package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/fitquest/fitquest-api/backend/config"
	"github.com/fitquest/fitquest-api/backend/utils"
)

// CORS allows the configured frontend origins to call the API with credentials.
func CORS(cfg *config.WebAppConfig) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,Cookie",
		AllowCredentials: true,
	})
}

// CustomErrorHandler renders errors that escaped the handlers as API envelopes
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return utils.SendNotFound(c, fe.Message)
		case fiber.StatusBadRequest:
			return utils.SendBadRequest(c, fe.Message, nil)
		case fiber.StatusMethodNotAllowed:
			return utils.SendError(c, fe.Code, "METHOD_NOT_ALLOWED", fe.Message, nil)
		}
		if fe.Code < fiber.StatusInternalServerError {
			return utils.SendError(c, fe.Code, "REQUEST_ERROR", fe.Message, nil)
		}
	}

	slog.Error("Unhandled request error",
		slog.String("type", "error"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return utils.SendInternalServerError(c, "Internal Server Error")
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// JSON only; nothing here should ever load subresources.
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		return c.Next()
	}
}
