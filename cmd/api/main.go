// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/domain/browse"
	"github.com/your-org/primecart/internal/domain/cart"
	"github.com/your-org/primecart/internal/domain/checkout"
	"github.com/your-org/primecart/internal/domain/theme"
	"github.com/your-org/primecart/internal/domain/wishlist"
	"github.com/your-org/primecart/internal/infrastructure/storage"
	"github.com/your-org/primecart/internal/interfaces/http"
	"github.com/your-org/primecart/internal/interfaces/http/routes"
	"github.com/your-org/primecart/internal/pkg/notify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Select the storage backend
	backend, err := newBackend(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize storage backend: %v", err)
	}

	adapter := storage.NewAdapter(backend, logger)
	notifier := notify.NewLogger(logger)

	// Construct each store exactly once; every consumer observes the same
	// instance.
	cartStore := cart.NewService(adapter, notifier, cfg)
	wishlistStore := wishlist.NewService(adapter, notifier)
	themeStore := theme.NewService(adapter, cfg)
	checkoutFlow := checkout.NewService(cartStore, notifier, cfg)

	stores := &routes.Stores{
		Catalog:  catalog.NewClient(cfg),
		Pipeline: browse.NewPipeline(cfg.Store.PageSize),
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Checkout: checkoutFlow,
		Theme:    themeStore,
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, logger, stores)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	if closer, ok := backend.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Errorf("Failed to close storage backend: %v", err)
		}
	}

	logger.Info("Server shutdown completed")
}

// newLogger configures logrus from the logging config
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// newBackend selects the persistent store driver
func newBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		return storage.NewRedisBackend(cfg)
	case config.StorageDriverMemory:
		return storage.NewMemoryBackend(), nil
	default:
		return storage.NewFileBackend(cfg.Storage.Path)
	}
}
