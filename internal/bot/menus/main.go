package menus

import (
	"fmt"
	"strings"

	"github.com/calorelia/calorelia-bot/internal/bot/keyboards"
	"github.com/calorelia/calorelia-bot/internal/domain"
	"github.com/calorelia/calorelia-bot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MainView holds everything the main view renders.
type MainView struct {
	Entries    []domain.FoodEntry
	Totals     domain.Totals
	Difference *domain.Difference // nil unless the difference view is active
}

// SendMainView sends the totals line and today's entries with the action
// keyboard. When Difference is set, the totals line shows signed
// goal-relative values instead of absolute totals.
func SendMainView(api *tgbotapi.BotAPI, chatID int64, view MainView) error {
	var b strings.Builder

	if view.Difference != nil {
		b.WriteString(fmt.Sprintf("🍽 *Today vs goals:* %+dg, %+d cals\n",
			utils.RoundInt(view.Difference.Protein), utils.RoundInt(view.Difference.Calories)))
		b.WriteString(fmt.Sprintf("(%s protein, %s calories)\n", diffTag(view.Difference.Protein), diffTag(view.Difference.Calories)))
	} else {
		b.WriteString(fmt.Sprintf("🍽 *Today:* %dg, %d cals\n",
			utils.RoundInt(view.Totals.Protein), utils.RoundInt(view.Totals.Calories)))
	}

	if len(view.Entries) == 0 {
		b.WriteString("\nNo foods recorded yet. Add one below.")
	} else {
		b.WriteString("\n")
		for i, entry := range view.Entries {
			b.WriteString(fmt.Sprintf("%d. %s: %dg, %d cals\n",
				i+1, entry.DisplayName, utils.RoundInt(entry.Protein), utils.RoundInt(entry.Calories)))
		}
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainView(view.Entries)
	if _, err := api.Send(msg); err != nil {
		// Entry names can break Markdown; retry as plain text.
		msg.ParseMode = ""
		_, err = api.Send(msg)
		return err
	}
	return nil
}

func diffTag(v float64) string {
	if v >= 0 {
		return "surplus"
	}
	return "deficit"
}

// SendSettingsMenu sends the settings menu showing current goals and
// whether an API key is stored.
func SendSettingsMenu(api *tgbotapi.BotAPI, chatID int64, goals domain.Goals, hasAPIKey bool) error {
	var b strings.Builder
	b.WriteString("⚙️ Settings\n\n")

	if goals.Protein != nil {
		b.WriteString(fmt.Sprintf("🎯 Protein goal: %dg\n", utils.RoundInt(*goals.Protein)))
	} else {
		b.WriteString("🎯 Protein goal: not set\n")
	}
	if goals.Calories != nil {
		b.WriteString(fmt.Sprintf("🎯 Calorie goal: %d cals\n", utils.RoundInt(*goals.Calories)))
	} else {
		b.WriteString("🎯 Calorie goal: not set\n")
	}

	if hasAPIKey {
		b.WriteString("🔑 Gemini API key: saved\n")
	} else {
		b.WriteString("🔑 Gemini API key: not set\n")
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = keyboards.SettingsMenu()
	_, err := api.Send(msg)
	return err
}

// SendHistoryMenu sends the archived days as expandable rows, newest first.
func SendHistoryMenu(api *tgbotapi.BotAPI, chatID int64, records []domain.DayRecord) error {
	text := "📜 Closed days (newest first):"
	if len(records) == 0 {
		text = "📜 No closed days yet. Use \"Close day\" to archive today."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.HistoryMenu(records)
	_, err := api.Send(msg)
	return err
}

// SendHistoryRecord sends the expanded view of one archived day.
func SendHistoryRecord(api *tgbotapi.BotAPI, chatID int64, record domain.DayRecord) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 %s — %dg, %d cals\n\n",
		record.Date, utils.RoundInt(record.TotalProtein), utils.RoundInt(record.TotalCalories)))
	for _, food := range record.Foods {
		b.WriteString(fmt.Sprintf("• %s: %dg, %d cals\n",
			food.DisplayName, utils.RoundInt(food.Protein), utils.RoundInt(food.Calories)))
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}

// SendAIPreview sends the suggested entries for confirmation.
func SendAIPreview(api *tgbotapi.BotAPI, chatID int64, items []domain.FoodCandidate) error {
	var b strings.Builder
	b.WriteString("🤖 Here's what I understood:\n\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("• %s: %dg, %d cals\n",
			item.Name, utils.RoundInt(item.Protein), utils.RoundInt(item.Calories)))
	}
	b.WriteString("\nAdd these to today's list?")

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = keyboards.AIPreview()
	_, err := api.Send(msg)
	return err
}
