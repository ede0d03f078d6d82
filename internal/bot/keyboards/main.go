package keyboards

import (
	"fmt"

	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/calorelia/calorelia-bot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// historyButtonLimit caps how many records get expand buttons; Telegram
// rejects oversized keyboards.
const historyButtonLimit = 25

// MainView creates the main view keyboard: one delete row per entry,
// followed by the action rows.
func MainView(entries []domain.FoodEntry) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for i, entry := range entries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 %s", entry.DisplayName),
				fmt.Sprintf("delete_food:%d", i),
			),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add food", "add_food"),
			tgbotapi.NewInlineKeyboardButtonData("🤖 AI entry", "ai_entry"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Toggle view", "toggle_view"),
			tgbotapi.NewInlineKeyboardButtonData("📦 Close day", "close_day"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📜 History", "history"),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", "settings"),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SettingsMenu creates the settings keyboard
func SettingsMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Set goals", "set_goals"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔑 Set API key", "set_api_key"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
		),
	)
}

// HistoryMenu creates one expand button per archived day, newest first.
func HistoryMenu(records []domain.DayRecord) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for i, record := range records {
		if i == historyButtonLimit {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s — %dg, %d cals", record.Date, utils.RoundInt(record.TotalProtein), utils.RoundInt(record.TotalCalories)),
				fmt.Sprintf("history:%d", i),
			),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// AIPreview creates the confirm/cancel keyboard for suggested entries
func AIPreview() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm", "ai_confirm"),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Try again", "ai_entry"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Cancel", "ai_cancel"),
		),
	)
}

// CloseDayConfirm creates the archive confirmation keyboard
func CloseDayConfirm() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, close day", "confirm_close"),
			tgbotapi.NewInlineKeyboardButtonData("❌ No", "main_menu"),
		),
	)
}

// CancelInput creates a single cancel button back to the main menu
func CancelInput() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Cancel", "main_menu"),
		),
	)
}

// BackToMenu creates a single main menu button
func BackToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
		),
	)
}
