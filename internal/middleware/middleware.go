package middleware

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/contextkeys"
	"github.com/fortniteiabot/fortnitecoach/internal/ledger"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

type Middlewares struct {
	sessions types.SessionStore
	registry *ledger.Registry
}

func NewMessageAnalyzer(sessions types.SessionStore, registry *ledger.Registry) *Middlewares {
	return &Middlewares{
		sessions: sessions,
		registry: registry,
	}
}

// SessionMiddleware resolves or creates the user's chat session and
// records the user in the registry so broadcasts can reach them later.
func (m *Middlewares) SessionMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		var (
			userID int64
			chatID int64
		)

		switch {
		case update.Message != nil && update.Message.From != nil:
			userID = update.Message.From.ID
			chatID = update.Message.Chat.ID
		case update.CallbackQuery != nil:
			userID = update.CallbackQuery.From.ID
			chatID = getChatIDFromMaybeInaccessibleMessage(update.CallbackQuery.Message)
		default:
			return
		}

		if userID == 0 || chatID == 0 {
			return
		}

		if err := m.registry.Register(userID); err != nil {
			log.Error().Err(err).Int64("user_id", userID).Msg("failed to register user")
		}

		session, err := m.sessions.GetUserSession(userID)
		if err != nil {
			session = &types.Session{
				UserID: userID,
				ChatID: chatID,
				State:  types.StateStart,
			}
			if err := m.sessions.CreateSession(session); err != nil {
				log.Error().Err(err).Int64("user_id", userID).Msg("failed to create session")
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID:    chatID,
					Text:      messages.ErrorDefault(),
					ParseMode: messages.ParseModeHTML,
				})
				return
			}
		}

		ctx = contextkeys.WithSessionID(ctx, session.ID)
		next(ctx, b, update)
	}
}

func getChatIDFromMaybeInaccessibleMessage(m models.MaybeInaccessibleMessage) int64 {
	if m.Message != nil {
		return m.Message.Chat.ID
	}
	if m.InaccessibleMessage != nil {
		return m.InaccessibleMessage.Chat.ID
	}
	return 0
}

// AnalyzeMessageMiddleware classifies the update so the main handler
// can dispatch without re-inspecting it.
func (m *Middlewares) AnalyzeMessageMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.CallbackQuery != nil && update.CallbackQuery.Data != "" {
			newCtx := contextkeys.WithMessageType(ctx, contextkeys.MessageTypeClickButton)
			newCtx = contextkeys.WithCallbackData(newCtx, update.CallbackQuery.Data)
			next(newCtx, b, update)
			return
		}

		next(contextkeys.WithMessageType(ctx, determineMessageType(update)), b, update)
	}
}

func determineMessageType(update *models.Update) contextkeys.MessageType {
	if update.Message == nil {
		return contextkeys.MessageTypeUnknown
	}

	msg := update.Message
	if msg.Text != "" && strings.HasPrefix(msg.Text, "/") {
		return contextkeys.MessageTypeCommand
	}
	if len(msg.Photo) > 0 {
		return contextkeys.MessageTypePhoto
	}
	if msg.Text != "" || msg.Caption != "" {
		return contextkeys.MessageTypeText
	}
	return contextkeys.MessageTypeUnknown
}
