package handlers

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/ledger"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

func (bh *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session) {
	cmd := commandName(update.Message.Text)
	args := commandArgs(update.Message.Text)
	chatID := update.Message.Chat.ID
	userID := session.UserID

	switch cmd {
	case "/start", "/help":
		if session.State != types.StateStart {
			session.State = types.StateStart
			if err := bh.sessions.UpdateSession(session); err != nil {
				log.Warn().Err(err).Msg("failed to reset session state")
			}
		}
		bh.sendHTML(ctx, b, chatID, messages.StartWelcome())
	case "/menu":
		bh.sendMainMenu(ctx, b, chatID)
	case "/about":
		bh.sendHTML(ctx, b, chatID, messages.About())
	case "/premiuminfo":
		bh.sendHTML(ctx, b, chatID, messages.PremiumInfo())
	case "/code":
		bh.handleCode(ctx, b, chatID, args)
	case "/profile":
		bh.handleProfile(ctx, b, chatID, userID)
	case "/referrals":
		record := bh.referrals.Record(userID)
		bh.sendHTML(ctx, b, chatID, messages.Referrals(userID, len(record.Referred), len(record.BonusGranted)))
	case "/useref":
		bh.handleUseRef(ctx, b, chatID, userID, args)
	case "/replay":
		bh.sendHTML(ctx, b, chatID, messages.Replay())
	case "/stats", "/premiumlist", "/broadcast", "/competition", "/premium", "/premiumplus":
		bh.HandleAdminCommand(ctx, b, update, session, cmd, args)
	default:
		bh.sendHTML(ctx, b, chatID, messages.ErrorUnknownCommand())
	}
}

func (bh *Handlers) handleCode(ctx context.Context, b *bot.Bot, chatID int64, args []string) {
	if len(args) == 0 {
		bh.sendHTML(ctx, b, chatID, messages.CodeUsage(bh.discount.Code()))
		return
	}

	price, expiresAt, err := bh.discount.Validate(args[0], MonthlyPriceUSD)
	switch {
	case errors.Is(err, ledger.ErrNoActiveDiscount):
		bh.sendHTML(ctx, b, chatID, messages.CodeNoDiscount())
	case errors.Is(err, ledger.ErrInvalidCode):
		bh.sendHTML(ctx, b, chatID, messages.CodeInvalid())
	case err != nil:
		bh.sendHTML(ctx, b, chatID, messages.ErrorDefault())
	default:
		percent := int(math.Round(bh.discount.Percentage() * 100))
		bh.sendHTML(ctx, b, chatID, messages.CodeValid(bh.discount.Code(), percent, price, expiresAt))
	}
}

func (bh *Handlers) handleProfile(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	xp := bh.progression.XP(userID)
	level, levelName := ledger.LevelOf(xp)
	record := bh.referrals.Record(userID)

	bh.sendHTML(ctx, b, chatID, messages.Profile(
		userID,
		level, levelName, xp,
		bh.premium.Describe(userID),
		len(record.Referred), len(record.BonusGranted),
		record.ReferredBy,
	))
}

func (bh *Handlers) handleUseRef(ctx context.Context, b *bot.Bot, chatID, userID int64, args []string) {
	if len(args) == 0 {
		bh.sendHTML(ctx, b, chatID, messages.UseRefUsage())
		return
	}
	refID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		bh.sendHTML(ctx, b, chatID, messages.UseRefUsage())
		return
	}

	switch err := bh.referrals.Attach(userID, refID); {
	case errors.Is(err, ledger.ErrSelfReferral):
		bh.sendHTML(ctx, b, chatID, messages.UseRefSelf())
	case errors.Is(err, ledger.ErrAlreadyReferred):
		bh.sendHTML(ctx, b, chatID, messages.UseRefAlready())
	case err != nil:
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to attach referral")
		bh.sendHTML(ctx, b, chatID, messages.ErrorDefault())
	default:
		bh.sendHTML(ctx, b, chatID, messages.UseRefDone(refID))
	}
}
