// Command civicworks runs the mobile client core headless: it wires the
// gateway client and the state containers, performs the initial fetches a
// freshly opened app would, and keeps the containers refreshed until
// interrupted. The mobile shell links the same internal packages.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"civicworks/internal/config"
	"civicworks/internal/gateway"
	"civicworks/internal/logging"
	"civicworks/internal/refresh"
	"civicworks/internal/store"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment variables from .env")
	}

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "civicworks")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("starting civicworks core",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Int("page_size", cfg.PageSize),
		zap.Int("refresh_interval_minutes", cfg.RefreshIntervalMinutes),
	)

	gw := gateway.New(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, logger)
	stores := store.New(gw, logger)

	// The fetches a freshly opened app issues before any user input.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.APITimeoutSeconds+5)*time.Second)
	stores.Assignments.Fetch(ctx)
	refresh.RunOnce(ctx, cfg, stores, logger)
	cancel()

	c := refresh.Start(cfg, stores, logger)
	defer c.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}
