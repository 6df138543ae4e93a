package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"cmsapi/internal/ai"
	"cmsapi/internal/config"
	"cmsapi/internal/database"
	"cmsapi/internal/database/migration"
	handlers "cmsapi/internal/http/handler"
	"cmsapi/internal/http/middleware"
	kvpostgres "cmsapi/internal/kv/postgres"
	"cmsapi/internal/otel"
	"cmsapi/internal/service"
	"cmsapi/internal/storage"
	"cmsapi/internal/vector"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Primary store: PostgreSQL-backed key-value storage.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	store := kvpostgres.NewStore(db)

	// AI provider for embeddings and generation.
	aiClient := ai.NewClient(cfg.AI)

	// Vector index. An unreachable Qdrant at startup is not fatal: the write
	// path keeps working and search degrades until it comes back.
	index, err := vector.NewQdrant(cfg.Qdrant)
	if err != nil {
		log.Fatalf("failed to configure vector index: %v", err)
	}
	defer index.Close()

	ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := index.EnsureCollection(ensureCtx, aiClient.Dimensions()); err != nil {
		warnJSON(loc, "vector_collection_ensure_failed", err)
	}
	cancel()

	// Object storage for media files.
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	svcs := handlers.Services{
		Content:   service.NewContentService(store, index, aiClient),
		Search:    service.NewSearchService(index, aiClient),
		Authoring: service.NewAuthoringService(aiClient),
		Media:     service.NewMediaService(objStore, store),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(cfg.Production()),
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Content-Type, Authorization, X-API-Key",
	}))

	handlers.RegisterRoutes(app, cfg, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func warnJSON(loc *time.Location, msg string, err error) {
	entry := map[string]any{
		"ts":    time.Now().In(loc).Format(time.RFC3339Nano),
		"level": "warn",
		"msg":   msg,
		"error": err.Error(),
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
