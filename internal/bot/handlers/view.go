package handlers

import (
	"context"

	"github.com/calorelia/calorelia-bot/internal/bot/menus"
	"github.com/calorelia/calorelia-bot/internal/bot/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMainView renders the current ledger. The difference view is used only
// while the session flag is on and both goals are still set; a stale flag
// (goals cleared since the toggle) falls back to absolute totals.
func sendMainView(ctx context.Context, api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager, chatID, userID int64) error {
	view := menus.MainView{
		Entries: deps.LedgerSvc.Entries(ctx, userID),
		Totals:  deps.LedgerSvc.Totals(ctx, userID),
	}

	if stateManager.ShowingDifference(userID) {
		if diff, ok := deps.GoalsSvc.Difference(ctx, userID); ok {
			view.Difference = &diff
		} else {
			stateManager.SetShowingDifference(userID, false)
		}
	}

	return menus.SendMainView(api, chatID, view)
}
