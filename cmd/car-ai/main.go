package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/kozuong/Car-AI/internal/analyze"
	"github.com/kozuong/Car-AI/internal/config"
	"github.com/kozuong/Car-AI/internal/handle"
	"github.com/kozuong/Car-AI/internal/imageproc"
	"github.com/kozuong/Car-AI/internal/rarity"
	"github.com/kozuong/Car-AI/internal/search"
	"github.com/kozuong/Car-AI/internal/store"
	"github.com/kozuong/Car-AI/internal/vision/gemini"
)

func main() {
	cfg := config.Load()

	engine := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	searchClient := search.New(cfg.GoogleSearchAPIKey, cfg.GoogleSearchCX)

	caches := analyze.NewCaches(cfg.LogoCacheSize, cfg.CountCacheSize)
	resolver := analyze.NewResolver(caches, searchClient, searchClient, engine, rarity.New())
	pipeline := analyze.NewPipeline(engine, resolver)

	history := openHistory(cfg.DatabaseURL)
	if history != nil && cfg.HistoryRetentionDays > 0 {
		go purgeLoop(history, time.Duration(cfg.HistoryRetentionDays)*24*time.Hour)
	}

	h := handle.New(pipeline, imageproc.NewEncoder(), resolver, engine, history)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/analyze_car", h.AnalyzeCar)
	mux.HandleFunc("/history", h.HistoryList)
	mux.HandleFunc("/test_api", h.TestAPI)
	mux.HandleFunc("/test_logo_search", h.TestLogoSearch)
	mux.HandleFunc("/test_number_produced", h.TestNumberProduced)

	addr := ":" + cfg.Port
	log.Printf("car-ai listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// purgeLoop trims history rows past the retention window once a day.
func purgeLoop(history *store.HistoryRepo, retention time.Duration) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		n, err := history.PurgeOlderThan(ctx, retention)
		cancel()
		if err != nil {
			log.Printf("[history] purge: %v", err)
		} else if n > 0 {
			log.Printf("[history] purged %d rows", n)
		}
		time.Sleep(24 * time.Hour)
	}
}

// openHistory connects the optional analysis history store; a missing DSN
// just disables it.
func openHistory(dsn string) *store.HistoryRepo {
	if dsn == "" {
		log.Print("no DATABASE_URL, history store disabled")
		return nil
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db.Ping: %v", err)
	}

	repo := store.NewHistoryRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	log.Print("history store connected")
	return repo
}
