package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/coach"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

const xpAIReply = 5

var greetings = []string{"hola", "buenas", "hello", "hey", "hi ", "hi!", "gm", "good morning", "good evening"}

func (bh *Handlers) HandleText(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := session.UserID
	text := strings.TrimSpace(update.Message.Text)
	low := strings.ToLower(text)

	if low == "" {
		bh.sendHTML(ctx, b, chatID, messages.ErrorUnsupportedMessageType())
		return
	}

	// Greetings and help requests get the welcome tour.
	if isGreeting(low) || strings.Contains(low, "help") || strings.Contains(low, "coach") {
		bh.sendHTML(ctx, b, chatID, messages.StartWelcome())
		return
	}

	// Exact pro sens cards (Clix, Peterbot, Bugha and friends).
	if card := coach.LookupProSens(low); card != "" {
		bh.sendHTML(ctx, b, chatID, card)
		return
	}

	// Buying intent hooks straight into the premium pitch.
	if strings.Contains(low, "premium") || strings.Contains(low, "price") ||
		strings.Contains(low, "pay") || strings.Contains(low, "buy") {
		bh.sendHTML(ctx, b, chatID, messages.PremiumHook())
		return
	}

	if strings.Contains(low, "pro sens") || strings.Contains(low, "pro sensitivities") {
		bh.sendHTML(ctx, b, chatID, messages.ProSensOverview())
		return
	}

	// Free AI chat is a premium feature.
	if !bh.premium.IsEntitled(userID) {
		bh.sendHTML(ctx, b, chatID, messages.AIChatLocked())
		return
	}

	reply, err := bh.coach.Ask(ctx, text)
	if err != nil {
		if errors.Is(err, coach.ErrNotConfigured) {
			log.Warn().Msg("ai chat requested but no api key configured")
		} else {
			log.Error().Err(err).Int64("user_id", userID).Msg("ai request failed")
		}
		bh.sendHTML(ctx, b, chatID, messages.AIUnavailable())
		return
	}

	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   reply,
	})

	if err := bh.progression.Award(userID, xpAIReply); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to award xp")
	}
}

func isGreeting(low string) bool {
	for _, g := range greetings {
		if strings.HasPrefix(low, g) {
			return true
		}
	}
	return false
}
