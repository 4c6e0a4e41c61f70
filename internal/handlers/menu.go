package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/fortniteiabot/fortnitecoach/internal/messages"
)

func (bh *Handlers) buildMenuKeyboard() models.InlineKeyboardMarkup {
	rows := [][]models.InlineKeyboardButton{
		{
			{Text: "🎛 Config & Sens", CallbackData: messages.SectionConfig},
			{Text: "🎯 AIM / Mechanics", CallbackData: messages.SectionAim},
		},
		{
			{Text: "📚 Routines (PREMIUM)", CallbackData: messages.SectionTraining},
			{Text: "🗺 Competitive drops (PREMIUM)", CallbackData: messages.SectionDrops},
		},
		{
			{Text: "🔫 META loadouts", CallbackData: messages.SectionCombos},
			{Text: "⚙ Optimize PC (PREMIUM)", CallbackData: messages.SectionOptimize},
		},
		{
			{Text: "👥 Duo / Comms", CallbackData: messages.SectionDuo},
			{Text: "🧠 Mindset", CallbackData: messages.SectionMindset},
		},
		{
			{Text: "🏷 Competitive role (PREMIUM)", CallbackData: messages.SectionRole},
		},
		{
			{Text: "📊 Analyze skill (PREMIUM)", CallbackData: messages.SectionAnalyze},
			{Text: "📝 Analyze match (PREMIUM)", CallbackData: messages.SectionMatch},
		},
		{
			{Text: "💎 SEE PREMIUM", CallbackData: "buy_premium"},
		},
	}
	return models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (bh *Handlers) sendMainMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	keyboard := bh.buildMenuKeyboard()
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        messages.MainMenuText(),
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &keyboard,
	})
}
