package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kozuong/Car-AI/internal/analyze"
	"github.com/kozuong/Car-AI/internal/config"
	"github.com/kozuong/Car-AI/internal/imageproc"
	"github.com/kozuong/Car-AI/internal/rarity"
	"github.com/kozuong/Car-AI/internal/search"
	"github.com/kozuong/Car-AI/internal/telegram"
	"github.com/kozuong/Car-AI/internal/vision/gemini"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false
	log.Printf("authorized as @%s", bot.Self.UserName)

	engine := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	searchClient := search.New(cfg.GoogleSearchAPIKey, cfg.GoogleSearchCX)

	caches := analyze.NewCaches(cfg.LogoCacheSize, cfg.CountCacheSize)
	resolver := analyze.NewResolver(caches, searchClient, searchClient, engine, rarity.New())
	pipeline := analyze.NewPipeline(engine, resolver)

	telegram.NewRouter(bot, pipeline, imageproc.NewEncoder()).Run()
}
