package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calorelia/calorelia-bot/internal/bot/keyboards"
	"github.com/calorelia/calorelia-bot/internal/bot/menus"
	"github.com/calorelia/calorelia-bot/internal/bot/state"
	"github.com/calorelia/calorelia-bot/internal/logger"
	"github.com/calorelia/calorelia-bot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CallbackHandler handles inline keyboard callbacks
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, callback *tgbotapi.CallbackQuery, userID int64) error {
	// Acknowledge first so the client stops the spinner even if rendering fails.
	if _, err := h.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logger.Warningf("Failed to answer callback query: %v", err)
	}

	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case data == "add_food":
		return h.promptEntry(chatID, userID)
	case data == "ai_entry":
		return h.promptFoodText(chatID, userID)
	case data == "toggle_view":
		return h.toggleView(ctx, chatID, userID)
	case data == "close_day":
		return h.confirmCloseDay(chatID)
	case data == "confirm_close":
		return h.closeDay(ctx, chatID, userID)
	case data == "main_menu":
		h.stateManager.SetUserState(userID, state.None)
		return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
	case data == "settings":
		return h.settings(ctx, chatID, userID)
	case data == "set_goals":
		return h.promptGoals(chatID, userID)
	case data == "set_api_key":
		return h.promptAPIKey(chatID, userID)
	case data == "history":
		return menus.SendHistoryMenu(h.api, chatID, h.deps.HistorySvc.List(ctx, userID))
	case strings.HasPrefix(data, "history:"):
		return h.showHistoryRecord(ctx, chatID, userID, strings.TrimPrefix(data, "history:"))
	case strings.HasPrefix(data, "delete_food:"):
		return h.deleteFood(ctx, chatID, userID, strings.TrimPrefix(data, "delete_food:"))
	case data == "ai_confirm":
		return h.confirmAI(ctx, chatID, userID)
	case data == "ai_cancel":
		return h.cancelAI(ctx, chatID, userID)
	default:
		logger.Debugf("Unknown callback data: %s", data)
		return nil
	}
}

func (h *CallbackHandler) promptEntry(chatID, userID int64) error {
	h.stateManager.SetUserState(userID, state.WaitingForEntry)
	msg := tgbotapi.NewMessage(chatID, "Send the entry as \"protein calories [name] [x amount]\".\nExamples: \"30 500\", \"12 155 greek yogurt\", \"6 70 egg x2\".")
	msg.ReplyMarkup = keyboards.CancelInput()
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) promptFoodText(chatID, userID int64) error {
	if h.stateManager.GetUserState(userID) == state.AIProcessing {
		msg := tgbotapi.NewMessage(chatID, "Still working on your previous description, one moment…")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetUserState(userID, state.WaitingForFoodText)
	msg := tgbotapi.NewMessage(chatID, "🤖 Describe what you ate, e.g. \"two eggs and a slice of toast with butter\".")
	msg.ReplyMarkup = keyboards.CancelInput()
	_, err := h.api.Send(msg)
	return err
}

// toggleView flips the totals line between absolute totals and
// goal-relative difference. Without both goals set there is nothing to
// diff against, so the toggle only reports why.
func (h *CallbackHandler) toggleView(ctx context.Context, chatID, userID int64) error {
	if !h.deps.GoalsSvc.Goals(ctx, userID).Complete() {
		msg := tgbotapi.NewMessage(chatID, "Set both protein and calorie goals first (Settings → Set goals).")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetShowingDifference(userID, !h.stateManager.ShowingDifference(userID))
	return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
}

func (h *CallbackHandler) confirmCloseDay(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "📦 Archive today's list and start fresh?")
	msg.ReplyMarkup = keyboards.CloseDayConfirm()
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) closeDay(ctx context.Context, chatID, userID int64) error {
	record, err := h.deps.HistorySvc.CloseDay(ctx, userID, time.Now())
	if err != nil {
		return err
	}
	if record == nil {
		msg := tgbotapi.NewMessage(chatID, "Nothing to archive — today's list is empty.")
		if _, err := h.api.Send(msg); err != nil {
			return err
		}
		return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
	}

	h.stateManager.SetShowingDifference(userID, false)
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("📦 Archived %s: %dg, %d cals (%d foods).",
		record.Date, utils.RoundInt(record.TotalProtein), utils.RoundInt(record.TotalCalories), len(record.Foods)))
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
}

func (h *CallbackHandler) settings(ctx context.Context, chatID, userID int64) error {
	goals := h.deps.GoalsSvc.Goals(ctx, userID)
	hasKey := h.deps.Credentials.APIKey(ctx, userID) != ""
	return menus.SendSettingsMenu(h.api, chatID, goals, hasKey)
}

func (h *CallbackHandler) promptGoals(chatID, userID int64) error {
	h.stateManager.SetUserState(userID, state.WaitingForGoals)
	msg := tgbotapi.NewMessage(chatID, "Send your daily goals as \"protein calories\", \"-\" to leave one unset.\nExamples: \"150 2000\", \"- 1800\".")
	msg.ReplyMarkup = keyboards.CancelInput()
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) promptAPIKey(chatID, userID int64) error {
	h.stateManager.SetUserState(userID, state.WaitingForAPIKey)
	msg := tgbotapi.NewMessage(chatID, "🔑 Send your Gemini API key.")
	msg.ReplyMarkup = keyboards.CancelInput()
	_, err := h.api.Send(msg)
	return err
}

func (h *CallbackHandler) showHistoryRecord(ctx context.Context, chatID, userID int64, raw string) error {
	index, err := strconv.Atoi(raw)
	if err != nil {
		logger.Debugf("Bad history index %q: %v", raw, err)
		return nil
	}

	records := h.deps.HistorySvc.List(ctx, userID)
	if index < 0 || index >= len(records) {
		// The menu may be stale after another day was closed.
		return menus.SendHistoryMenu(h.api, chatID, records)
	}
	return menus.SendHistoryRecord(h.api, chatID, records[index])
}

func (h *CallbackHandler) deleteFood(ctx context.Context, chatID, userID int64, raw string) error {
	index, err := strconv.Atoi(raw)
	if err != nil {
		logger.Debugf("Bad delete index %q: %v", raw, err)
		return nil
	}

	if err := h.deps.LedgerSvc.RemoveEntry(ctx, userID, index); err != nil {
		return err
	}
	return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
}

func (h *CallbackHandler) confirmAI(ctx context.Context, chatID, userID int64) error {
	items, ok := h.stateManager.PendingCandidates(userID)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "Those suggestions are no longer available. Start a new AI entry.")
		_, err := h.api.Send(msg)
		return err
	}

	added, err := h.deps.ImportSvc.Commit(ctx, userID, items)
	if err != nil {
		return err
	}
	h.stateManager.ClearPendingCandidates(userID)

	msg := tgbotapi.NewMessage(chatID, importResultMessage(added))
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
}

// importResultMessage reports a commit outcome. Every candidate can be
// skipped as unusable, which must not read like a success.
func importResultMessage(added int) string {
	if added == 0 {
		return "None of the suggestions had usable values, so nothing was added."
	}
	if added == 1 {
		return "✅ Added 1 food to today's list."
	}
	return fmt.Sprintf("✅ Added %d foods to today's list.", added)
}

func (h *CallbackHandler) cancelAI(ctx context.Context, chatID, userID int64) error {
	h.stateManager.ClearPendingCandidates(userID)
	h.stateManager.SetUserState(userID, state.None)
	return sendMainView(ctx, h.api, h.deps, h.stateManager, chatID, userID)
}
