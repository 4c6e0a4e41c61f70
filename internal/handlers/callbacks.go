package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/contextkeys"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// XP awards for using the premium tools.
const (
	xpAnalysisSection = 10
	xpPremiumSection  = 5
)

func (bh *Handlers) HandleClickButton(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.CallbackQuery == nil {
		return
	}

	_ = bh.answerCallback(ctx, b, update.CallbackQuery.ID, "")

	data, _ := contextkeys.GetCallbackData(ctx)
	if data == "" {
		data = update.CallbackQuery.Data
	}
	chatID := bh.getChatIDFromUpdate(update)
	if chatID == 0 {
		return
	}
	userID := session.UserID

	switch {
	case data == "buy_premium":
		keyboard := models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: "✔ I paid", CallbackData: "ya_pague"}},
			},
		}
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        messages.BuyPremium(),
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &keyboard,
		})
	case data == "ya_pague":
		session.State = types.StateAwaitingReceipt
		if err := bh.sessions.UpdateSession(session); err != nil {
			log.Warn().Err(err).Int64("user_id", userID).Msg("failed to mark session awaiting receipt")
		}
		bh.sendHTML(ctx, b, chatID, messages.PaymentInstructions())
	case messages.FreeSection(data):
		bh.sendHTML(ctx, b, chatID, messages.Section(data))
	case messages.PremiumSection(data):
		if !bh.premium.IsEntitled(userID) {
			bh.sendHTML(ctx, b, chatID, messages.PremiumLocked())
			return
		}

		bh.sendHTML(ctx, b, chatID, messages.Section(data))

		award := xpPremiumSection
		if messages.AnalysisSection(data) {
			award = xpAnalysisSection
		}
		if err := bh.progression.Award(userID, award); err != nil {
			log.Error().Err(err).Int64("user_id", userID).Msg("failed to award xp")
		}
	}
}
