package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-api/backend"
	webconfig "github.com/fitquest/fitquest-api/backend/config"
	"github.com/fitquest/fitquest-api/backend/handlers"
	"github.com/fitquest/fitquest-api/backend/realtime"
	webservices "github.com/fitquest/fitquest-api/backend/services"
	"github.com/fitquest/fitquest-api/fitquest"
	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
	"github.com/fitquest/fitquest-api/fitquest/economy/utils"
	"github.com/fitquest/fitquest-api/fitquest/logger"
	"github.com/fitquest/fitquest-api/fitquest/services"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCMD)
}

func serve(ctx context.Context, cfg *fitquest.Config) error {
	logger.LogSystem("Starting FitQuest API",
		slog.String("version", version),
		slog.String("commit", commit))

	if cfg.Web.SessionKey == "" {
		return errors.New("web.session_key (or SESSION_SECRET) must be set")
	}

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	initCtx, initCancel := context.WithTimeout(ctx, config.SchemaInitTimeout)
	defer initCancel()

	db, err := database.New(initCtx, cfg.DB)
	if err != nil {
		logger.LogError("Database connection failed", err,
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		return err
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if cfg.DB.AutoMigrate {
		slog.Info("Initializing database schema...")
		if err := db.InitializeSchema(initCtx); err != nil {
			logger.LogError("Failed to initialize database schema", err)
			return err
		}
	}

	webApp, closeDeps, err := buildWebApp(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer closeDeps()

	app := backend.NewApp(webApp)

	var ws *realtime.Server
	if addr := webApp.Config.RealtimeAddress(); addr != "" {
		ws = realtime.NewServer(addr, cfg.Web.AllowedOrigins)
	}

	errCh := make(chan error, 2)
	go func() {
		slog.Info("HTTP API listening", slog.String("address", webApp.Config.Address()))
		errCh <- app.Listen(webApp.Config.Address())
	}()
	if ws != nil {
		go func() {
			slog.Info("Realtime echo listening", slog.String("address", webApp.Config.RealtimeAddress()))
			errCh <- ws.ListenAndServe()
		}()
	}

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s)

	var runErr error
	select {
	case sig := <-s:
		logger.LogSystem("Shutting down...", slog.String("signal", sig.String()))
	case runErr = <-errCh:
		if runErr != nil {
			slog.Error("Listener stopped", slog.Any("error", runErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Failed to stop HTTP API", slog.Any("error", err))
	}
	if ws != nil {
		if err := ws.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop realtime listener", slog.Any("error", err))
		}
	}
	return runErr
}

// buildWebApp wires repositories, services and optional integrations. The
// returned func releases whatever was opened.
func buildWebApp(ctx context.Context, cfg *fitquest.Config, db *database.DB) (*handlers.WebApp, func(), error) {
	bunDB := db.BunDB()
	tx := utils.NewEconomicTransactionManager(bunDB)

	userRepo := repositories.NewUserRepository(bunDB)
	characterRepo := repositories.NewCharacterRepository(bunDB)
	fitnessRepo := repositories.NewFitnessRepository(bunDB)
	questRepo := repositories.NewQuestRepository(bunDB)
	battleRepo := repositories.NewBattleRepository(bunDB)
	storyRepo := repositories.NewStoryRepository(bunDB)
	achievementRepo := repositories.NewAchievementRepository(bunDB)
	leaderboardRepo := repositories.NewLeaderboardRepository(bunDB)

	closers := []func(){}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var cache services.LeaderboardCache
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", slog.Any("error", err))
			}
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			// The cache is optional; reads fall back to the database.
			slog.Warn("Redis unreachable, leaderboard cache will miss",
				slog.String("addr", cfg.Redis.Addr),
				slog.Any("error", err))
		}
		cancel()
		cache = services.NewRedisLeaderboardCache(client, cfg.Redis.TTL())
	}

	users := services.NewUserService(tx, userRepo, characterRepo, questRepo)
	fitness := services.NewFitnessService(tx, characterRepo, fitnessRepo, questRepo, achievementRepo)
	quests := services.NewQuestService(tx, characterRepo, questRepo, achievementRepo)
	battles := services.NewBattleService(tx, characterRepo, battleRepo, questRepo, achievementRepo, economy.NewBattleResolver(nil))
	story := services.NewStoryService(storyRepo)

	webCfg := webconfig.NewWebAppConfig(cfg)
	webApp := &handlers.WebApp{
		Config:         webCfg,
		DB:             db,
		SessionService: webservices.NewSessionService(webCfg),
		Users:          users,
		Characters:     services.NewCharacterService(tx, characterRepo),
		Fitness:        fitness,
		Quests:         quests,
		Battles:        battles,
		Rewards:        services.NewRewardService(tx, characterRepo, achievementRepo),
		Leaderboard:    services.NewLeaderboardService(leaderboardRepo, cache),
		Story:          story,
		Dashboard:      services.NewDashboardService(users, fitness, quests, battles, story),
		Version:        version,
		Commit:         commit,
	}

	if cfg.Auth.OIDCEnabled() {
		identity, err := webservices.NewOIDCService(ctx, cfg.Auth)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to initialize OIDC provider: %w", err)
		}
		webApp.Identity = identity
		slog.Info("Single sign-on enabled", slog.String("issuer", cfg.Auth.IssuerURL))
	} else {
		slog.Warn("No OIDC provider configured; /auth/login is disabled",
			slog.Bool("local_login", cfg.Auth.AllowLocalLogin))
	}

	return webApp, closeAll, nil
}
