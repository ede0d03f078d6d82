package handlers

import (
	"context"

	"github.com/calorelia/calorelia-bot/internal/bot/state"
	"github.com/calorelia/calorelia-bot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler routes incoming updates to the command, text and callback
// handlers.
type UpdateHandler struct {
	commandHandler  *CommandHandler
	textHandler     *TextHandler
	callbackHandler *CallbackHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *UpdateHandler {
	return &UpdateHandler{
		commandHandler:  NewCommandHandler(api, deps, stateManager),
		textHandler:     NewTextHandler(api, deps, stateManager),
		callbackHandler: NewCallbackHandler(api, deps, stateManager),
	}
}

// Handle processes a Telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return h.callbackHandler.Handle(ctx, update.CallbackQuery, update.CallbackQuery.From.ID)
	}

	if update.Message == nil {
		return nil
	}
	userID := update.Message.From.ID

	if update.Message.IsCommand() {
		return h.commandHandler.Handle(ctx, update.Message, userID)
	}

	if update.Message.Text != "" {
		return h.textHandler.Handle(ctx, update.Message, userID)
	}

	logger.Debug("Ignoring non-text message", "user_id", userID)
	return nil
}
