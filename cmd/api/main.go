package main

import (
	"context"
	"log"
	"os/exec"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/classify"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/config"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/db"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/generate"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/history"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/ocr"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/router"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatal("❌ Missing env var: OPENAI_API_KEY")
	}
	mustHaveBinary("tesseract")

	// ───────────────────────── DB ─────────────────────────
	var repo history.Repository
	if cfg.DatabaseURL != "" {
		pgDB := db.ConnectPostgres(cfg.DatabaseURL)
		defer pgDB.Close()
		repo = history.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, generation history kept in memory")
		repo = history.NewInMemoryRepository()
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var sink storage.Sink
	if cfg.HasSink() {
		r2Client, err := storage.NewR2Client(context.Background(), storage.R2Config{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2Bucket,
			BaseURL:   cfg.R2BaseURL,
			Prefix:    cfg.R2Prefix,
		})
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		sink = r2Client
	} else {
		log.Println("R2 not configured, /menus/publish disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	classifier := classify.NewOpenAIClient(classify.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.OpenAIModel,
	})
	extractor := ocr.NewTesseractExtractor()

	service := generate.NewService(classifier, extractor, repo, sink, cfg.BannerDir)
	handler := generate.NewHandler(service)

	// ───────────────────────── START ─────────────────────────
	r := router.NewRouter(handler, cfg.AllowOrigins)

	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	r.Run(":" + cfg.Port)
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
