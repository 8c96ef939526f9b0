package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	// Google Custom Search, used for logo and production-count lookups.
	// Optional: without them those attributes degrade to sentinels.
	GoogleSearchAPIKey string
	GoogleSearchCX     string

	// Optional analysis history store.
	DatabaseURL string

	// History rows older than this many days are purged once a day.
	// 0 keeps everything.
	HistoryRetentionDays int

	// Required by cmd/bot only.
	TelegramBotToken string

	LogoCacheSize  int
	CountCacheSize int
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("bad %s: %v", k, err)
	}
	return n
}

func Load() *Config {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		GoogleSearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),

		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HistoryRetentionDays: getEnvInt("HISTORY_RETENTION_DAYS", 0),
		TelegramBotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),

		LogoCacheSize:  getEnvInt("LOGO_CACHE_SIZE", 512),
		CountCacheSize: getEnvInt("COUNT_CACHE_SIZE", 2048),
	}
}
