package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fortniteiabot/fortnitecoach/internal/broadcast"
	"github.com/fortniteiabot/fortnitecoach/internal/coach"
	"github.com/fortniteiabot/fortnitecoach/internal/config"
	"github.com/fortniteiabot/fortnitecoach/internal/handlers"
	"github.com/fortniteiabot/fortnitecoach/internal/ledger"
	"github.com/fortniteiabot/fortnitecoach/internal/middleware"
	"github.com/fortniteiabot/fortnitecoach/store"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}
	if cfg.AdminID == 0 {
		log.Warn().Msg("ADMIN_ID not set, admin panel and receipt forwarding disabled")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var records store.RecordStore
	switch cfg.StorageBackend {
	case "postgres":
		pg, err := store.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Postgres")
		}
		defer pg.Close()
		records = pg
	default:
		records = store.NewFileStore(cfg.DataDir)
	}

	rdb, err := store.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisDB, "fortnitecoach")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	sessions := store.NewRedisSessionStore(rdb, 24)

	registry := ledger.NewRegistry(records)
	premium := ledger.NewPremiumManager(records)
	progression := ledger.NewProgressionTracker(records)
	discount := ledger.NewDiscount(cfg.DiscountCode, cfg.DiscountPercent)
	reporter := ledger.NewReporter(records, registry)

	coachClient := coach.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	httpClient := &http.Client{
		Timeout: 10 * time.Minute,
	}
	pollTimeout := 50 * time.Second

	b, err := bot.New(
		cfg.BotToken,
		bot.WithHTTPClient(pollTimeout, httpClient),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	referrals := ledger.NewReferralLedger(records, premium, handlers.NotifyReferrer(b))

	h := handlers.NewHandlers(sessions, premium, progression, referrals, discount, registry, reporter, coachClient, cfg.AdminID)

	broadcaster := broadcast.NewBroadcaster(b, registry, reporter, discount, cfg.AdminID)
	broadcaster.Start()
	defer broadcaster.Stop()

	middlewares := middleware.NewMessageAnalyzer(sessions, registry)
	handlerChain := middlewares.SessionMiddleware(
		middlewares.AnalyzeMessageMiddleware(
			h.MainHandler,
		),
	)

	b.RegisterHandlerMatchFunc(func(update *models.Update) bool {
		return update.Message != nil
	}, handlerChain)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, handlerChain)

	log.Info().Msg("bot started, press Ctrl+C to stop")
	b.Start(ctx)
}
