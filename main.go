package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/calorelia/calorelia-bot/internal/bot"
	"github.com/calorelia/calorelia-bot/internal/bot/handlers"
	"github.com/calorelia/calorelia-bot/internal/bot/state"
	"github.com/calorelia/calorelia-bot/internal/config"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/calorelia/calorelia-bot/internal/services"
	"github.com/calorelia/calorelia-bot/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warningf(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Configuration loaded successfully")

	if cfg.TelegramToken == "" {
		logger.Fatalf("TELEGRAM_BOT_TOKEN is required")
	}

	store := storage.New(cfg.Storage)
	defer store.Close()
	repo := storage.NewStateRepo(store)
	logger.Infof("Storage ready (backend: %s)", cfg.Storage.Backend)

	deps := handlers.Dependencies{
		LedgerSvc:   services.NewLedgerService(repo),
		GoalsSvc:    services.NewGoalsService(repo),
		HistorySvc:  services.NewHistoryService(repo),
		AISvc:       services.NewAIService(cfg.OpenAIAPIKey),
		ImportSvc:   services.NewImportService(repo),
		Credentials: repo,
	}
	logger.Info("Services initialized successfully")

	stateManager := newStateManager(cfg)
	defer stateManager.Close()

	telegramBot, err := bot.NewBot(cfg.TelegramToken, deps, stateManager)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Bot is running. Press Ctrl+C to stop.")
	if err := telegramBot.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Fatalf("Bot stopped with error: %v", err)
	}
}

// newStateManager prefers Redis-backed sessions when Redis is already the
// storage backend, so conversational state survives restarts there too.
func newStateManager(cfg *config.Config) state.StateManager {
	if cfg.Storage.Backend == config.BackendRedis {
		manager, err := state.NewRedisManager(cfg.Storage.Redis)
		if err == nil {
			return manager
		}
		logger.Warningf("Redis session manager unavailable, using in-memory sessions: %v", err)
	}
	return state.NewManager()
}
