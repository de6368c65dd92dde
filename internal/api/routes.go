package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dhkim/newsclip/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers) {
	cfg := handlers.config

	app.Use(middleware.RequestLogger())
	app.Use(middleware.CookieGate(cfg.AccessPassword))

	// Health check endpoint
	app.Get("/health", handlers.HealthCheck)

	// Pages and server-rendered fragments
	app.Get("/", handlers.Home)
	app.Get("/login", handlers.LoginPage)
	app.Post("/login", handlers.Login)
	app.Post("/search-results", handlers.SearchResults)
	app.Post("/article-detail", handlers.ArticleDetail)
	app.Get("/clippings-tab", handlers.ClippingsTab)
	app.Get("/clips/:clipId", handlers.ClipDetail)

	// JSON API
	app.Post("/api/search", handlers.SearchAPI)
	app.Get("/api/article", handlers.ArticleAPI)
	app.Post("/api/clip", handlers.SaveClip)
	app.Delete("/api/clips/all", handlers.ClearClips)
	app.Delete("/api/clip/:clipId", handlers.DeleteClip)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
