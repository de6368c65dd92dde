package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/dhkim/newsclip/internal/api"
	"github.com/dhkim/newsclip/internal/article"
	"github.com/dhkim/newsclip/internal/cache"
	"github.com/dhkim/newsclip/internal/clips"
	"github.com/dhkim/newsclip/internal/config"
	"github.com/dhkim/newsclip/internal/logger"
	"github.com/dhkim/newsclip/internal/middleware"
	"github.com/dhkim/newsclip/internal/news"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	})

	log := logger.Get()
	log.Info().Msg("Starting newsclip...")

	// Select the search cache backend: Redis when configured and reachable,
	// otherwise in-memory.
	var searchCache cache.SearchCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisPrefix, cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory search cache")
			searchCache = cache.NewMemoryCache()
		} else {
			searchCache = redisCache
		}
	} else {
		searchCache = cache.NewMemoryCache()
	}
	defer func() {
		if err := searchCache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing search cache")
		}
	}()

	newsClient := news.NewClient(cfg.NaverClientID, cfg.NaverClientSecret, cfg.FetchTimeout, searchCache)
	extractor := article.NewExtractor(cfg.FetchTimeout)
	clipStore := clips.NewMemoryStore()

	// Template engine for the server-rendered pages and fragments
	engine := html.New("./web/templates", ".html")
	for name, fn := range api.TemplateFuncs() {
		engine.AddFunc(name, fn)
	}

	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Static("/static", "./web/static")

	handlers := api.NewHandlers(cfg, newsClient, extractor, clipStore)
	api.SetupRoutes(app, handlers)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
