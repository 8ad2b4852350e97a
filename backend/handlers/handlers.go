package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitquest/fitquest-api/backend/config"
	webmodels "github.com/fitquest/fitquest-api/backend/models"
	webservices "github.com/fitquest/fitquest-api/backend/services"
	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
	"github.com/fitquest/fitquest-api/fitquest/services"
)

// Pinger reports storage reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config         *config.WebAppConfig
	DB             Pinger
	SessionService *webservices.SessionService
	// Identity is nil when no OIDC provider is configured.
	Identity webservices.IdentityProvider

	Users       services.UserService
	Characters  services.CharacterService
	Fitness     services.FitnessService
	Quests      services.QuestService
	Battles     services.BattleService
	Rewards     services.RewardService
	Leaderboard services.LeaderboardService
	Story       services.StoryService
	Dashboard   services.DashboardService

	Version string
	Commit  string
}

// GetSession returns the valid session carried by the request, if any.
func (w *WebApp) GetSession(c *fiber.Ctx) (*webmodels.UserSession, error) {
	return w.SessionService.GetSession(c)
}

// sessionHandler is a handler body that runs with a resolved identity.
type sessionHandler func(c *fiber.Ctx, session *webmodels.UserSession) error

// authed hands the session stored by AuthRequired to fn.
func authed(fn sessionHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := utils.ExtractUserSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		return fn(c, session)
	}
}

// respondError maps domain errors onto API envelopes.
func respondError(c *fiber.Ctx, err error) error {
	var (
		validation *services.ValidationError
		rule       *economy.RuleError
		notFound   *repositories.NotFoundError
		conflict   *repositories.ConflictError
		body       *utils.BodyError
		param      *utils.ParamError
	)

	switch {
	case errors.As(err, &validation):
		return utils.SendBadRequest(c, validation.Error(), map[string]string{validation.Field: validation.Message})
	case errors.As(err, &body):
		return utils.SendBadRequest(c, "Request body is not valid JSON", nil)
	case errors.As(err, &param):
		return utils.SendBadRequest(c, param.Error(), map[string]string{param.Name: "must be a UUID"})
	case errors.As(err, &rule):
		return utils.SendError(c, fiber.StatusBadRequest, rule.Code, rule.Message, nil)
	case errors.As(err, &notFound):
		slog.Debug("Resource not found", slog.String("path", c.Path()), slog.Any("error", err))
		return utils.SendNotFound(c, entityLabel(notFound.Entity)+" not found")
	case errors.As(err, &conflict):
		slog.Debug("Resource conflict", slog.String("path", c.Path()), slog.Any("error", err))
		return utils.SendError(c, fiber.StatusConflict, "CONFLICT", entityLabel(conflict.Entity)+" already exists", nil)
	case errors.Is(err, context.DeadlineExceeded):
		slog.Error("Request timed out",
			slog.String("type", "error"),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return utils.SendInternalServerError(c, "The request timed out")
	}

	slog.Error("Request failed",
		slog.String("type", "error"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return utils.SendInternalServerError(c, "An unexpected error occurred")
}

// entityLabel turns a repository entity name such as "fitness_entry" into "Fitness entry".
func entityLabel(entity string) string {
	if entity == "" {
		return "Resource"
	}
	label := strings.ReplaceAll(entity, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := webmodels.NewHealthCheck(webApp.Version)

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := webApp.DB.Ping(ctx); err != nil {
			health.AddComponent("database", "unhealthy", err.Error())
		} else {
			health.AddComponent("database", "healthy", "")
		}

		if health.Status != "healthy" {
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, webmodels.NewErrorResponse("UNHEALTHY", "Database unreachable", nil))
		}
		return utils.SendSuccess(c, health, "Health check successful")
	}
}
