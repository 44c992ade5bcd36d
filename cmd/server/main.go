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
	"github.com/symptom-guidance-server/internal/database"
	"github.com/symptom-guidance-server/internal/domain"
	"github.com/symptom-guidance-server/internal/learning"
	"github.com/symptom-guidance-server/internal/repository"
	"github.com/symptom-guidance-server/internal/service"
	"github.com/symptom-guidance-server/internal/store"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
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

	// Learning store and feedback aggregator
	kv, err := store.New(cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create learning store")
	}
	defer kv.Close()

	aggregator := learning.NewAggregator(kv, logger)

	// Medical record history. Without a reachable Postgres the server still
	// serves diagnoses; history then lives in memory for the process.
	var records domain.RecordRepository
	var snapshots *repository.SnapshotStore

	db, err := database.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Warn("Database unavailable, using in-memory record history")
		records = repository.NewMemoryRecordRepository()
	} else {
		defer db.Close()

		runner, err := database.NewMigrationRunner(database.URL(cfg.Database), cfg.Database.MigrationsPath, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create migration runner")
		}
		if err := runner.Up(); err != nil {
			logger.WithError(err).Fatal("Failed to run migrations")
		}
		runner.Close()

		records = repository.NewRecordRepository(db.Pool, logger)

		snapshotDB, err := repository.OpenSnapshotDB(database.URL(cfg.Database))
		if err != nil {
			logger.WithError(err).Warn("Snapshot store unavailable")
		} else {
			snapshots = repository.NewSnapshotStore(snapshotDB, logger)
			if err := snapshots.EnsureSchema(ctx); err != nil {
				logger.WithError(err).Warn("Snapshot schema setup failed, disabling snapshots")
				snapshots = nil
				snapshotDB.Close()
			} else {
				defer snapshotDB.Close()
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting symptom guidance server")

	// Create server
	server := api.NewServer(configManager, engine, aggregator, cat, records, snapshots, logger)

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

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(os.Stdout)
	}

	return logger
}
