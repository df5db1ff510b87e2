package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/cache"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/config"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/fanout"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/handlers"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/logging"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/server"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/storage"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize structured logging
	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("collector"))
	logging.SetDefault(logger)

	slog.Info("Starting collector service",
		slog.Int("port", cfg.Collector.Server.Port),
		slog.String("log_level", cfg.Logging.Level),
		slog.String("storage", cfg.Collector.Storage.Type),
	)
	if *configPath != "" {
		slog.Info("Loaded configuration", slog.String("config_path", *configPath))
	}

	if cfg.Collector.APIKey == "" {
		slog.Warn("No API key configured: all ingest requests will be rejected")
	}

	// Initialize storage
	var store storage.Store
	switch cfg.Collector.Storage.Type {
	case "postgres":
		pgStore, err := storage.NewPostgresStore(context.Background(), cfg.Collector.Storage.Postgres.URL)
		if err != nil {
			log.Fatalf("Failed to initialize postgres store: %v", err)
		}
		store = pgStore
		slog.Info("Using postgres event store")
	case "memory", "":
		store = storage.NewMemoryStore(cfg.Collector.Storage.Capacity)
		slog.Info("Using in-memory event store",
			slog.Int("capacity", cfg.Collector.Storage.Capacity))
	default:
		log.Fatalf("Unknown storage type: %s (supported: memory, postgres)", cfg.Collector.Storage.Type)
	}
	defer store.Close()

	// Initialize recent-events cache
	recentCache := cache.Disabled()
	if cfg.Collector.Redis.Enabled {
		c, err := cache.NewRecentCache(cfg.Collector.Redis.URL, cfg.Collector.RecentLimit)
		if err != nil {
			slog.Warn("Failed to initialize redis cache, continuing without it",
				logging.Error(err))
		} else {
			recentCache = c
			slog.Info("Recent-events cache enabled", slog.String("redis_url", cfg.Collector.Redis.URL))
		}
	}
	defer recentCache.Close()

	// Initialize NATS fan-out
	var publisher fanout.Publisher = fanout.NoopPublisher{}
	if cfg.Collector.NATS.Enabled {
		p, err := fanout.NewNATSPublisher(cfg.Collector.NATS.URL, cfg.Collector.NATS.Subject)
		if err != nil {
			slog.Warn("Failed to connect to NATS, continuing without fan-out",
				logging.Error(err))
		} else {
			publisher = p
			slog.Info("Fan-out enabled", logging.Subject(cfg.Collector.NATS.Subject))
		}
	}
	defer publisher.Close()

	// Initialize HTTP handlers
	handler := handlers.NewEventsHandler(handlers.Options{
		APIKey:       cfg.Collector.APIKey,
		MaxEventSize: int64(cfg.Collector.MaxEventSize),
		RecentLimit:  cfg.Collector.RecentLimit,
		Store:        store,
		Cache:        recentCache,
		Fanout:       publisher,
		Logger:       logger,
	})
	router := server.NewRouter(handler)

	// Create server with config values
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Collector.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Collector.Server.ReadTimeout,
		WriteTimeout: cfg.Collector.Server.WriteTimeout,
		IdleTimeout:  cfg.Collector.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		slog.Info("Collector listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Collector.Server.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server stopped")
}
