package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/messages"
	"github.com/fortniteiabot/fortnitecoach/types"
)

// CompetitionBonusDays is the premium reward for topping the XP board.
const CompetitionBonusDays = 7

const premiumListLimit = 120

func (bh *Handlers) HandleAdminCommand(ctx context.Context, b *bot.Bot, update *models.Update, session *types.Session, cmd string, args []string) {
	chatID := update.Message.Chat.ID

	if !bh.isAdmin(session.UserID) {
		// Grant commands answer explicitly, the reporting ones stay quiet.
		if cmd == "/premium" || cmd == "/premiumplus" {
			bh.sendHTML(ctx, b, chatID, messages.AdminOnly())
		}
		return
	}

	switch cmd {
	case "/stats":
		s := bh.reporter.Summary()
		bh.sendHTML(ctx, b, chatID, messages.AdminStats(
			s.TotalUsers, s.ActiveStandard, s.ActivePlus, s.ActiveLifetime, s.TrackedXP))
	case "/premiumlist":
		bh.handlePremiumList(ctx, b, chatID)
	case "/broadcast":
		bh.handleBroadcast(ctx, b, chatID, update.Message.Text)
	case "/competition":
		bh.handleCompetition(ctx, b, chatID)
	case "/premium":
		bh.handleGrant(ctx, b, chatID, args, types.PlanStandard)
	case "/premiumplus":
		bh.handleGrant(ctx, b, chatID, args, types.PlanPlus)
	}
}

func (bh *Handlers) handlePremiumList(ctx context.Context, b *bot.Bot, chatID int64) {
	entries := bh.reporter.PremiumEntries()
	if len(entries) == 0 {
		bh.sendHTML(ctx, b, chatID, messages.AdminPremiumListEmpty())
		return
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		state := "INACTIVE"
		switch {
		case e.Lifetime:
			state = "LIFE"
		case e.Active:
			state = "ACTIVE"
		}
		plan := "Standard"
		if e.Plan == types.PlanPlus {
			plan = "Plus"
		}
		lines = append(lines, fmt.Sprintf("%s – %s – %s – exp: %s", e.UserKey, plan, state, e.Exp))
		if len(lines) == premiumListLimit {
			break
		}
	}

	bh.sendHTML(ctx, b, chatID, messages.AdminPremiumListHeader()+messages.Escape(strings.Join(lines, "\n")))
}

func (bh *Handlers) handleBroadcast(ctx context.Context, b *bot.Bot, chatID int64, commandText string) {
	_, text, _ := strings.Cut(strings.TrimSpace(commandText), " ")
	text = strings.TrimSpace(text)
	if text == "" {
		bh.sendHTML(ctx, b, chatID, messages.AdminBroadcastUsage())
		return
	}

	sent := 0
	for _, uid := range bh.registry.All() {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: uid, Text: text}); err != nil {
			log.Debug().Err(err).Int64("user_id", uid).Msg("broadcast delivery failed")
			continue
		}
		sent++
	}

	bh.sendHTML(ctx, b, chatID, messages.AdminBroadcastDone(sent))
}

func (bh *Handlers) handleCompetition(ctx context.Context, b *bot.Bot, chatID int64) {
	top := bh.progression.Top(3)
	if len(top) == 0 {
		bh.sendHTML(ctx, b, chatID, messages.AdminCompetitionEmpty())
		return
	}

	text := messages.AdminCompetitionHeader()
	for i, entry := range top {
		uid, err := strconv.ParseInt(entry.UserKey, 10, 64)
		if err != nil {
			log.Warn().Str("user_key", entry.UserKey).Msg("skipping malformed xp key")
			continue
		}
		if err := bh.premium.Grant(uid, CompetitionBonusDays, types.PlanStandard); err != nil {
			log.Error().Err(err).Int64("user_id", uid).Msg("failed to grant competition bonus")
			continue
		}
		text += fmt.Sprintf("%d️⃣ <code>%d</code> – %d XP → +%d days Premium\n",
			i+1, uid, entry.XP, CompetitionBonusDays)
		bh.sendHTML(ctx, b, uid, messages.CompetitionWinner())
	}

	bh.sendHTML(ctx, b, chatID, text)
}

var lifetimeKeywords = map[string]bool{
	"life":     true,
	"lifetime": true,
	"perma":    true,
	"forever":  true,
}

func (bh *Handlers) handleGrant(ctx context.Context, b *bot.Bot, chatID int64, args []string, plan types.PlanTier) {
	usage := messages.AdminPremiumUsage()
	if plan == types.PlanPlus {
		usage = messages.AdminPremiumPlusUsage()
	}
	if len(args) < 2 {
		bh.sendHTML(ctx, b, chatID, usage)
		return
	}

	uid, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		bh.sendHTML(ctx, b, chatID, usage)
		return
	}
	mode := strings.ToLower(args[1])

	if lifetimeKeywords[mode] {
		if err := bh.premium.GrantLifetime(uid, plan); err != nil {
			log.Error().Err(err).Int64("user_id", uid).Msg("failed to grant lifetime premium")
			bh.sendHTML(ctx, b, chatID, messages.ErrorDefault())
			return
		}
		bh.sendHTML(ctx, b, chatID, messages.AdminGrantLifetimeDone(uid, plan == types.PlanPlus))
		if plan == types.PlanPlus {
			bh.sendHTML(ctx, b, uid, messages.GrantLifetimePlusNotice())
		} else {
			bh.sendHTML(ctx, b, uid, messages.GrantLifetimeNotice())
		}
	} else {
		days, err := strconv.Atoi(mode)
		if err != nil || days <= 0 {
			bh.sendHTML(ctx, b, chatID, usage)
			return
		}
		if err := bh.premium.Grant(uid, days, plan); err != nil {
			log.Error().Err(err).Int64("user_id", uid).Msg("failed to grant premium")
			bh.sendHTML(ctx, b, chatID, messages.ErrorDefault())
			return
		}
		exp := ""
		if entry, ok := bh.premium.Entry(uid); ok {
			exp = entry.Exp
		}
		bh.sendHTML(ctx, b, chatID, messages.AdminGrantDaysDone(uid, days, exp, plan == types.PlanPlus))
		if plan == types.PlanPlus {
			bh.sendHTML(ctx, b, uid, messages.GrantDaysPlusNotice(days, exp))
		} else {
			bh.sendHTML(ctx, b, uid, messages.GrantDaysNotice(days, exp))
		}
	}

	// A first activation may owe the referrer their bonus.
	if err := bh.referrals.SettleBonus(uid); err != nil {
		log.Error().Err(err).Int64("user_id", uid).Msg("failed to settle referral bonus")
	}
}
