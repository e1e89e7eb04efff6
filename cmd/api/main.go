// Command api runs the dashboard reporting API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/parishbooks/parishbooks-backend/internal/api"
	"github.com/parishbooks/parishbooks-backend/internal/application/dashboard"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/config"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/logging"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		port       = flag.Int("port", 0, "Port to listen on (overrides config)")
		configPath = flag.String("config", "", "Path to config file (default: config.yaml, then env)")
		verbose    = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	// .env is optional; absence is not an error
	_ = godotenv.Load()

	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrEnv()
	}

	loggingCfg := cfg.Observability.Logging
	if *verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	service := dashboard.NewService(store, store, nil, logging.NewLoggerWithSystem(loggingCfg, "dashboard"))
	service.SetTopExpenseLimit(cfg.Dashboard.TopExpenseLimit)

	apiCfg := api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if *port != 0 {
		apiCfg.Port = *port
	}

	server := api.NewServer(apiCfg, service, logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
