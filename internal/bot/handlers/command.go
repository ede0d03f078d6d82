package handlers

import (
	"context"

	"github.com/calorelia/calorelia-bot/internal/bot/state"
	"github.com/calorelia/calorelia-bot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	logger.Infof("Handling command %s from user %d", message.Command(), userID)

	switch message.Command() {
	case "start":
		h.stateManager.SetUserState(userID, state.None)
		h.stateManager.ClearPendingCandidates(userID)
		return sendMainView(ctx, h.api, h.deps, h.stateManager, message.Chat.ID, userID)
	case "help":
		return h.handleHelp(message.Chat.ID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

// handleHelp handles the /help command
func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `Available commands:
/start - Show today's foods and totals
/help - Show this message

Adding a food:
1. Tap "➕ Add food"
2. Send protein, calories and optionally a name and an amount
Example: "30 500", "12 155 greek yogurt" or "6 70 egg x2"

AI entry:
1. Save a Gemini API key under Settings
2. Tap "🤖 AI entry" and describe what you ate in plain words
3. Review the suggestions and confirm

Tap the totals ("🔄 Toggle view") to switch between absolute totals and
the difference against your daily goals. "📦 Close day" archives today's
list into history and starts a fresh day.`

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /help to see what I can do.")
	_, err := h.api.Send(msg)
	return err
}
