package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pixel-color/internal/config"
	"github.com/phambaophuc/pixel-color/internal/http/handlers"
	"github.com/phambaophuc/pixel-color/internal/http/routes"
	"github.com/phambaophuc/pixel-color/internal/services/fetcher"
	"github.com/phambaophuc/pixel-color/internal/services/processor"
	"github.com/phambaophuc/pixel-color/internal/services/queue"
	"github.com/phambaophuc/pixel-color/internal/services/stats"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	downloader := fetcher.NewDownloader(cfg.Fetch, logger)
	pixelProcessor := processor.NewPixelProcessor(cfg.Pixel)
	logger.Info("Pixel processor ready",
		zap.String("filter", pixelProcessor.FilterName()),
		zap.Duration("fetch_timeout", cfg.Fetch.Timeout),
		zap.Int64("fetch_max_bytes", cfg.Fetch.MaxBytes),
	)

	var statsStore handlers.StatsStore
	if cfg.Redis.Addr != "" {
		statsService := stats.NewStatsService(cfg.Redis, logger)
		defer statsService.Close()
		statsStore = statsService
	}

	var publisher handlers.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		queueService, err := queue.NewQueueService(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
		if err != nil {
			logger.Warn("Failed to initialize queue service", zap.Error(err))
			// Continue without events
		} else {
			defer queueService.Close()
			publisher = queueService
		}
	}

	// Initialize handlers
	pixelHandler := handlers.NewPixelHandler(downloader, pixelProcessor, publisher, statsStore, logger)

	router := routes.NewRouter(pixelHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
