package handler

import (
	"database/sql"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cmsapi/internal/config"
	"cmsapi/internal/service"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Content   service.ContentService
	Search    service.SearchService
	Authoring service.AuthoringService
	Media     service.MediaService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, db *sql.DB, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", SwaggerUI())

	app.Get("/api/health", Health(cfg, db))
	app.Get("/healthz", Liveness())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/api/content", ListContent(svcs.Content))
	app.Post("/api/content", CreateContent(svcs.Content))
	app.Get("/api/content/:id", GetContent(svcs.Content))
	app.Put("/api/content/:id", UpdateContent(svcs.Content))
	app.Delete("/api/content/:id", DeleteContent(svcs.Content))

	app.Get("/api/search", SearchContent(svcs.Search))
	app.Post("/api/ai", AIActions(svcs.Authoring))

	app.Post("/api/media", UploadMedia(svcs.Media))
	app.Get("/api/media", ListMedia(svcs.Media))
	app.Get("/api/media/:id", GetMedia(svcs.Media))
	app.Delete("/api/media/:id", DeleteMedia(svcs.Media))

	app.All("/api/users", ComingSoon("Users"))
	app.All("/api/analytics", ComingSoon("Analytics"))

	app.Use(Fallback(cfg))
}
