// Package main provides the lightweight entry point for the symptom guidance
// server. This version requires no external databases - the learning store
// runs on SQLite and record history stays in memory.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/api"
	"github.com/symptom-guidance-server/internal/catalog"
	"github.com/symptom-guidance-server/internal/config"
	"github.com/symptom-guidance-server/internal/domain"
	"github.com/symptom-guidance-server/internal/learning"
	"github.com/symptom-guidance-server/internal/repository"
	"github.com/symptom-guidance-server/internal/service"
	"github.com/symptom-guidance-server/internal/store"
)

func main() {
	// Load lightweight configuration
	liteCfg := config.LoadLiteConfig()

	if err := liteCfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	configManager := liteCfg.Manager()
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Static reference catalogs and the scoring engine
	cat := catalog.New(logger)
	engine, err := service.NewDiagnosisEngine(cat, cfg.Engine.ResultCacheSize, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create diagnosis engine")
	}

	// SQLite-backed learning store and feedback aggregator
	kv, err := store.New(cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create learning store")
	}
	defer kv.Close()

	aggregator := learning.NewAggregator(kv, logger)

	// Record history lives in memory for the lifetime of the process.
	records := repository.NewMemoryRecordRepository()

	logger.WithFields(logrus.Fields{
		"port":     cfg.Server.Port,
		"data_dir": liteCfg.DataDir,
	}).Info("Starting symptom guidance server (lite)")

	// Create server
	server := api.NewServer(configManager, engine, aggregator, cat, records, nil, logger)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

// newLogger builds the process logger from the logging configuration.
func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.SetOutput(os.Stdout)

	return logger
}
