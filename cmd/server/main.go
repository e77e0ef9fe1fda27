package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/reddit-data-collector/internal/api"
	"github.com/reddit-data-collector/internal/config"
	"github.com/reddit-data-collector/internal/discovery"
	"github.com/reddit-data-collector/internal/fetcher"
	"github.com/reddit-data-collector/internal/reddit"
	"github.com/reddit-data-collector/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Reddit data collector server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Missing required Reddit API credentials")
	}

	// Wire up the collection pipeline
	client := reddit.NewHTTPClient(
		cfg.Reddit.ClientID,
		cfg.Reddit.ClientSecret,
		cfg.Reddit.UserAgent,
		cfg.Reddit.RequestTimeout,
	)
	selector := discovery.NewSelector(client, cfg, log)
	collector := fetcher.NewCollector(selector, fetcher.New(client, cfg, log))

	// Initialize router
	handler := api.NewCollectionHandler(collector, log)
	router := api.NewRouter(handler, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
