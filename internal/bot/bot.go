package bot

import (
	"context"
	"fmt"

	"github.com/calorelia/calorelia-bot/internal/bot/handlers"
	"github.com/calorelia/calorelia-bot/internal/bot/state"
	"github.com/calorelia/calorelia-bot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API and routes updates to the handlers.
type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
}

// NewBot creates a new bot instance
func NewBot(token string, deps handlers.Dependencies, stateManager state.StateManager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Infof("Bot authorized on account %s", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
	}, nil
}

// Start begins the long-polling update loop. It blocks until ctx is
// cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				logger.Errorf("Error handling update: %v", err)
			}
		}
	}
}
