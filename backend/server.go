// Package backend assembles the Fiber application serving the game API.
package backend

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fitquest/fitquest-api/backend/handlers"
	"github.com/fitquest/fitquest-api/backend/middleware"
	"github.com/fitquest/fitquest-api/backend/utils"
)

// NewApp builds the API with global middleware and every route registered.
func NewApp(webApp *handlers.WebApp) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "FitQuest API",
		ServerHeader: "FitQuest",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(middleware.LoggingMiddleware())
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(middleware.CORS(webApp.Config))

	setupRoutes(app, webApp)
	return app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	auth := app.Group("/auth", middleware.AuthRateLimit())
	auth.Get("/login", handlers.Login(webApp))
	auth.Get("/callback", handlers.OAuthCallback(webApp))
	auth.Post("/local", handlers.LocalLogin(webApp))
	auth.Post("/logout", handlers.Logout(webApp))
	auth.Get("/session", handlers.SessionInfo(webApp))

	api := app.Group("/api", middleware.APIRateLimit())

	// Public
	api.Get("/leaderboard", handlers.Leaderboard(webApp))

	protected := api.Group("", middleware.AuthRequired(webApp))

	protected.Get("/user", handlers.GetUser(webApp))
	protected.Delete("/user", handlers.DeleteUser(webApp))
	protected.Get("/dashboard", handlers.Dashboard(webApp))

	protected.Get("/character", handlers.GetCharacter(webApp))
	protected.Put("/character", handlers.UpdateCharacter(webApp))
	protected.Post("/character/upgrade", handlers.UpgradeCharacter(webApp))

	protected.Get("/fitness", handlers.ListFitness(webApp))
	protected.Post("/fitness", handlers.LogFitness(webApp))

	protected.Get("/quests", handlers.ListQuests(webApp))
	protected.Post("/quests/:id/complete", handlers.CompleteQuest(webApp))

	protected.Get("/battles", handlers.ListBattles(webApp))
	protected.Post("/battles", handlers.Fight(webApp))

	protected.Get("/story", handlers.GetStory(webApp))
	protected.Put("/story", handlers.UpdateStory(webApp))

	protected.Get("/rewards/daily", handlers.DailyRewardStatus(webApp))
	protected.Post("/rewards/daily", handlers.ClaimDailyReward(webApp))

	protected.Get("/achievements", handlers.ListAchievements(webApp))

	// No route matched
	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}
