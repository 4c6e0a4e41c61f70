package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// HandlePhoto forwards payment screenshots to the admin for manual
// review. Every photo is treated as a potential receipt.
func (bh *Handlers) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil || len(update.Message.Photo) == 0 {
		return
	}
	chatID := update.Message.Chat.ID
	userID := session.UserID

	// Largest rendition last.
	photo := update.Message.Photo[len(update.Message.Photo)-1]

	if bh.adminID == 0 {
		log.Warn().Msg("payment screenshot received but no admin configured")
		bh.sendHTML(ctx, b, chatID, messages.ReceiptError())
		return
	}

	_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    bh.adminID,
		Photo:     &models.InputFileString{Data: photo.FileID},
		Caption:   messages.ReceiptForwardCaption(userID),
		ParseMode: messages.ParseModeHTML,
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to forward receipt to admin")
		bh.sendHTML(ctx, b, chatID, messages.ReceiptError())
		return
	}

	if session.State == types.StateAwaitingReceipt {
		session.State = types.StateStart
		if err := bh.sessions.UpdateSession(session); err != nil {
			log.Warn().Err(err).Int64("user_id", userID).Msg("failed to reset session state")
		}
	}

	bh.sendHTML(ctx, b, chatID, messages.ReceiptReceived())
}
