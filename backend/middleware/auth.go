package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitquest/fitquest-api/backend/handlers"
	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/config"
)

// AuthRequired rejects requests without a valid session. Sessions past half
// their lifetime are reissued.
func AuthRequired(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := webApp.GetSession(c)
		if err != nil {
			slog.Debug("Auth required: no valid session", slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, "Authentication required")
		}

		if time.Until(session.ExpiresAt) < config.SessionDuration/2 {
			if err := webApp.SessionService.RefreshSession(c, session); err != nil {
				slog.Warn("Failed to refresh session",
					slog.String("user_id", session.UserID.String()),
					slog.String("error", err.Error()))
			}
		}

		c.Locals("user", session)

		slog.Debug("Auth middleware: user authenticated",
			slog.String("user_id", session.UserID.String()),
			slog.String("username", session.Username))

		return c.Next()
	}
}
