package broadcast

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/handlers"
	"github.com/fortniteiabot/fortnitecoach/internal/ledger"
	"github.com/fortniteiabot/fortnitecoach/internal/messages"
)

// Job times, local clock.
var (
	discountHour = 0  // midnight, checked on the 1st of the month
	warmupHour   = 15 // daily warm-up for premium users
)

type Broadcaster struct {
	botClient *bot.Bot
	registry  *ledger.Registry
	reporter  *ledger.Reporter
	discount  *ledger.Discount
	adminID   int64

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool

	now func() time.Time
}

func NewBroadcaster(botClient *bot.Bot, registry *ledger.Registry, reporter *ledger.Reporter, discount *ledger.Discount, adminID int64) *Broadcaster {
	ctx, cancel := context.WithCancel(context.Background())
	return &Broadcaster{
		botClient: botClient,
		registry:  registry,
		reporter:  reporter,
		discount:  discount,
		adminID:   adminID,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
}

func (s *Broadcaster) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	log.Info().Msg("broadcast jobs started")

	s.wg.Add(2)
	go s.runDaily(discountHour, s.activateMonthlyDiscount)
	go s.runDaily(warmupHour, s.sendDailyWarmup)
}

func (s *Broadcaster) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	log.Info().Msg("stopping broadcast jobs")
	s.cancel()
	s.wg.Wait()
	log.Info().Msg("broadcast jobs stopped")
}

func (s *Broadcaster) runDaily(hour int, job func()) {
	defer s.wg.Done()

	for {
		wait := untilNext(s.now(), hour)
		timer := time.NewTimer(wait)
		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			job()
		}
	}
}

// untilNext returns the duration until the next occurrence of the
// given local hour.
func untilNext(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// activateMonthlyDiscount opens the 24-hour discount window on the
// first day of the month and announces it to every registered user.
func (s *Broadcaster) activateMonthlyDiscount() {
	if s.now().Day() != 1 {
		return
	}

	s.discount.ActivateWindow()

	percent := int(math.Round(s.discount.Percentage() * 100))
	finalPrice := math.Round(handlers.MonthlyPriceUSD*(1-s.discount.Percentage())*100) / 100
	text := messages.DiscountAnnouncement(s.discount.Code(), percent, finalPrice)

	sent := 0
	for _, uid := range s.registry.All() {
		if s.send(uid, text) {
			sent++
		}
	}
	log.Info().Int("sent", sent).Msg("monthly discount announced")

	if s.adminID != 0 {
		s.send(s.adminID, messages.DiscountAdminNotice())
	}
}

var warmups = []string{
	"🔥 <b>Warm-up of the day (30 min)</b>\n\n" +
		"• 10 min AIM (Raider464 / Skavook)\n" +
		"• 10 min fast edits\n" +
		"• 10 min Realistics 1v1\n\n" +
		"Today's focus: <b>don't over-edit, only the pieces you need.</b>",
	"🔥 <b>Warm-up of the day (25 min)</b>\n\n" +
		"• 5 min AR tracking\n" +
		"• 10 min piece control\n" +
		"• 10 min Zone Wars\n\n" +
		"Today's focus: <b>rotate early, not late.</b>",
	"🔥 <b>Warm-up of the day (20 min)</b>\n\n" +
		"• 5 min shotgun flicks\n" +
		"• 5 min simple edits\n" +
		"• 10 min box fights\n\n" +
		"Today's focus: <b>don't push without an angle.</b>",
}

// sendDailyWarmup delivers a random warm-up routine to every user with
// an active entitlement.
func (s *Broadcaster) sendDailyWarmup() {
	text := warmups[rand.Intn(len(warmups))]

	sent := 0
	for _, uid := range s.reporter.EntitledUsers() {
		if s.send(uid, text) {
			sent++
		}
	}
	log.Info().Int("sent", sent).Msg("daily warmup delivered")
}

func (s *Broadcaster) send(chatID int64, text string) bool {
	ctx, cancel := context.WithTimeout(s.ctx, 10*time.Second)
	defer cancel()

	_, err := s.botClient.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: messages.ParseModeHTML,
	})
	if err != nil {
		log.Debug().Err(err).Int64("chat_id", chatID).Msg("broadcast delivery failed")
		return false
	}
	return true
}
