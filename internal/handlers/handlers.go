package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/coach"
	"github.com/fortniteiabot/fortnitecoach/internal/contextkeys"
	"github.com/fortniteiabot/fortnitecoach/internal/ledger"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// MonthlyPriceUSD is the base price of the monthly standard plan.
const MonthlyPriceUSD = 5.0

type Handlers struct {
	sessions    types.SessionStore
	premium     *ledger.PremiumManager
	progression *ledger.ProgressionTracker
	referrals   *ledger.ReferralLedger
	discount    *ledger.Discount
	registry    *ledger.Registry
	reporter    *ledger.Reporter
	coach       *coach.Client
	adminID     int64
}

func NewHandlers(
	sessions types.SessionStore,
	premium *ledger.PremiumManager,
	progression *ledger.ProgressionTracker,
	referrals *ledger.ReferralLedger,
	discount *ledger.Discount,
	registry *ledger.Registry,
	reporter *ledger.Reporter,
	coachClient *coach.Client,
	adminID int64,
) *Handlers {
	return &Handlers{
		sessions:    sessions,
		premium:     premium,
		progression: progression,
		referrals:   referrals,
		discount:    discount,
		registry:    registry,
		reporter:    reporter,
		coach:       coachClient,
		adminID:     adminID,
	}
}

func (bh *Handlers) MainHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := bh.getChatIDFromUpdate(update)
	messageType, _ := contextkeys.GetMessageType(ctx)

	sessionID, ok := contextkeys.GetSessionID(ctx)
	if !ok {
		log.Error().Msg("session id missing from context")
		if chatID != 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    chatID,
				Text:      messages.ErrorDefault(),
				ParseMode: messages.ParseModeHTML,
			})
		}
		return
	}

	session, err := bh.sessions.GetSession(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to get session")
		if chatID != 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    chatID,
				Text:      messages.ErrorDefault(),
				ParseMode: messages.ParseModeHTML,
			})
		}
		return
	}

	switch messageType {
	case contextkeys.MessageTypeCommand:
		bh.HandleCommand(ctx, b, update, session)
	case contextkeys.MessageTypeText:
		bh.HandleText(ctx, b, update, session)
	case contextkeys.MessageTypePhoto:
		bh.HandlePhoto(ctx, b, update, session)
	case contextkeys.MessageTypeClickButton:
		bh.HandleClickButton(ctx, b, update, session)
	default:
		if chatID != 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    chatID,
				Text:      messages.ErrorUnsupportedMessageType(),
				ParseMode: messages.ParseModeHTML,
			})
		}
	}
}

func (bh *Handlers) getChatIDFromUpdate(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil {
		if update.CallbackQuery.Message.Message != nil {
			return update.CallbackQuery.Message.Message.Chat.ID
		}
		if update.CallbackQuery.Message.InaccessibleMessage != nil {
			return update.CallbackQuery.Message.InaccessibleMessage.Chat.ID
		}
	}
	return 0
}

func (bh *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) error {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	return err
}

func (bh *Handlers) sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: messages.ParseModeHTML,
	})
}

func (bh *Handlers) isAdmin(userID int64) bool {
	return bh.adminID != 0 && userID == bh.adminID
}

// NotifyReferrer builds the callback wired into the referral ledger so
// the referrer hears about their bonus right after it is committed.
func NotifyReferrer(b *bot.Bot) func(int64) {
	return func(referrerID int64) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    referrerID,
			Text:      messages.ReferralBonus(),
			ParseMode: messages.ParseModeHTML,
		})
		if err != nil {
			log.Warn().Err(err).Int64("user_id", referrerID).Msg("failed to notify referrer")
		}
	}
}

func commandName(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return ""
	}
	cmd := fields[0]
	if strings.Contains(cmd, "@") {
		cmd = strings.SplitN(cmd, "@", 2)[0]
	}
	return cmd
}

func commandArgs(text string) []string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
