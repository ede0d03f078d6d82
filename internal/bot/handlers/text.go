package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/calorelia/calorelia-bot/internal/bot/menus"
	"github.com/calorelia/calorelia-bot/internal/bot/state"
	apperrors "github.com/calorelia/calorelia-bot/internal/errors"
	"github.com/calorelia/calorelia-bot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TextHandler handles text messages
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	switch h.stateManager.GetUserState(userID) {
	case state.WaitingForEntry:
		return h.handleEntry(ctx, message, userID)
	case state.WaitingForGoals:
		return h.handleGoals(ctx, message, userID)
	case state.WaitingForAPIKey:
		return h.handleAPIKey(ctx, message, userID)
	case state.WaitingForFoodText:
		return h.handleFoodText(ctx, message, userID)
	case state.AIProcessing:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Still working on your previous description, one moment…")
		_, err := h.api.Send(msg)
		return err
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please use the menu to pick an action.")
		_, err := h.api.Send(msg)
		return err
	}
}

// handleEntry records a manual food entry
func (h *TextHandler) handleEntry(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	input, err := parseEntryInput(message.Text)
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "I couldn't read that. Send \"protein calories [name] [x amount]\", e.g. \"30 500 chicken\" or \"6 70 egg x2\".")
		_, err := h.api.Send(msg)
		return err
	}

	if _, err := h.deps.LedgerSvc.AddEntry(ctx, userID, input); err != nil {
		if errors.Is(err, apperrors.ErrInvalidEntry) {
			msg := tgbotapi.NewMessage(message.Chat.ID, "An entry needs some protein or calories above zero.")
			_, err := h.api.Send(msg)
			return err
		}
		return err
	}

	h.stateManager.SetUserState(userID, state.None)
	return sendMainView(ctx, h.api, h.deps, h.stateManager, message.Chat.ID, userID)
}

// handleGoals sets or clears the daily goals
func (h *TextHandler) handleGoals(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	protein, calories, err := parseGoalsInput(message.Text)
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Send two values: protein then calories, \"-\" for either to leave it unset. Example: \"150 2000\" or \"- 2000\".")
		_, err := h.api.Send(msg)
		return err
	}

	if err := h.deps.GoalsSvc.SetGoals(ctx, userID, protein, calories); err != nil {
		if errors.Is(err, apperrors.ErrInvalidGoal) {
			msg := tgbotapi.NewMessage(message.Chat.ID, "Goals must be zero or positive numbers.")
			_, err := h.api.Send(msg)
			return err
		}
		return err
	}

	h.stateManager.SetUserState(userID, state.None)
	goals := h.deps.GoalsSvc.Goals(ctx, userID)
	return menus.SendSettingsMenu(h.api, message.Chat.ID, goals, h.deps.Credentials.APIKey(ctx, userID) != "")
}

// handleAPIKey stores the user's Gemini credential
func (h *TextHandler) handleAPIKey(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	key := strings.TrimSpace(message.Text)
	if err := h.deps.Credentials.SetAPIKey(ctx, userID, key); err != nil {
		return err
	}

	h.stateManager.SetUserState(userID, state.None)
	msg := tgbotapi.NewMessage(message.Chat.ID, "🔑 API key saved.")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	goals := h.deps.GoalsSvc.Goals(ctx, userID)
	return menus.SendSettingsMenu(h.api, message.Chat.ID, goals, key != "")
}

// handleFoodText runs the AI suggestion flow. The state flips to
// AIProcessing for the duration of the call so a second description can't
// start a concurrent request.
func (h *TextHandler) handleFoodText(ctx context.Context, message *tgbotapi.Message, userID int64) error {
	h.stateManager.SetUserState(userID, state.AIProcessing)

	processing := tgbotapi.NewMessage(message.Chat.ID, "Analyzing your description…")
	sentMsg, err := h.api.Send(processing)
	if err != nil {
		h.stateManager.SetUserState(userID, state.WaitingForFoodText)
		return err
	}

	apiKey := h.deps.Credentials.APIKey(ctx, userID)
	items, err := h.deps.AISvc.SuggestFoods(ctx, apiKey, message.Text)

	deleteMsg := tgbotapi.NewDeleteMessage(message.Chat.ID, sentMsg.MessageID)
	h.api.Send(deleteMsg)

	if err != nil {
		h.stateManager.SetUserState(userID, state.WaitingForFoodText)
		return h.sendAIFailure(message.Chat.ID, err)
	}

	if len(items) == 0 {
		h.stateManager.SetUserState(userID, state.WaitingForFoodText)
		msg := tgbotapi.NewMessage(message.Chat.ID, "I couldn't find any foods in that. Try describing the meal differently.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetPendingCandidates(userID, items)
	h.stateManager.SetUserState(userID, state.None)
	return menus.SendAIPreview(h.api, message.Chat.ID, items)
}

// sendAIFailure maps AI-path failures onto user-facing notices. Each failure
// is terminal for that one attempt; the user can immediately retry.
func (h *TextHandler) sendAIFailure(chatID int64, err error) error {
	var text string
	switch {
	case errors.Is(err, apperrors.ErrMissingCredential):
		text = "No API key saved yet. Add your Gemini API key under Settings first."
	case errors.Is(err, apperrors.ErrMissingPrompt):
		text = "Please describe what you ate."
	case errors.Is(err, apperrors.ErrMalformedResponse):
		text = "I couldn't make sense of the AI response. Please try again."
	case errors.Is(err, apperrors.ErrAPIError):
		var appErr *apperrors.AppError
		errors.As(err, &appErr)
		text = "AI error: " + appErr.Message
	default:
		logger.Errorf("Unexpected AI failure: %v", err)
		text = "Something went wrong talking to the AI. Please try again."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	_, sendErr := h.api.Send(msg)
	return sendErr
}
