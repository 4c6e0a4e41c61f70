package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	BotToken string
	AdminID  int64

	// StorageBackend selects where record sets live: "file" or "postgres".
	StorageBackend string
	DataDir        string
	PostgresDSN    string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	DiscountCode    string
	DiscountPercent float64

	LogLevel string
}

// Load reads config.env if present and builds the config from the
// environment. Only BOT_TOKEN is mandatory.
func Load() Config {
	if err := godotenv.Load("config.env"); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read config.env")
	}

	return Config{
		BotToken: strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		AdminID:  getEnvInt64("ADMIN_ID", 0),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", "data"),
		PostgresDSN:    strings.TrimSpace(os.Getenv("POSTGRES_DSN")),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		DiscountCode:    getEnv("DISCOUNT_CODE", "FNCS50"),
		DiscountPercent: getEnvFloat("DISCOUNT_PERCENT", 0.50),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in env, using default")
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in env, using default")
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid float in env, using default")
		return fallback
	}
	return f
}
