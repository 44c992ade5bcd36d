// Package api exposes the diagnosis engine, feedback aggregator, and record
// history over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
	"github.com/symptom-guidance-server/internal/learning"
	"github.com/symptom-guidance-server/internal/middleware"
	"github.com/symptom-guidance-server/internal/repository"
	"github.com/symptom-guidance-server/internal/service"
)

// insightHistoryLimit caps how much record history feeds the insight and
// trend reports per request.
const insightHistoryLimit = 1000

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server

	engine     *service.DiagnosisEngine
	aggregator *learning.Aggregator
	catalog    domain.Catalog
	records    domain.RecordRepository
	snapshots  *repository.SnapshotStore // optional, may be nil
}

// NewServer creates a new HTTP server instance. The snapshot store is
// optional; when nil, metric snapshots are simply not captured.
func NewServer(
	configManager domain.ConfigManager,
	engine *service.DiagnosisEngine,
	aggregator *learning.Aggregator,
	catalog domain.Catalog,
	records domain.RecordRepository,
	snapshots *repository.SnapshotStore,
	logger *logrus.Logger,
) *Server {
	cfg := configManager.GetConfig()

	// Set Gin mode based on environment
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(requestIDMiddleware())
	router.Use(requestLogMiddleware(logger))
	router.Use(corsMiddleware())
	if cfg.Server.RateLimit > 0 {
		router.Use(rateLimitMiddleware(cfg.Server.RateLimit, cfg.Server.RateBurst))
	}

	server := &Server{
		configManager: configManager,
		logger:        logger,
		router:        router,
		engine:        engine,
		aggregator:    aggregator,
		catalog:       catalog,
		records:       records,
		snapshots:     snapshots,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(shutdownCtx)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/diagnose", s.handleDiagnose)

		v1.POST("/feedback", s.handleSubmitFeedback)
		v1.GET("/metrics", s.handleGetMetrics)
		v1.GET("/insights", s.handleGetInsights)
		v1.GET("/trends", s.handleGetTrends)

		v1.GET("/diseases", s.handleListDiseases)
		v1.GET("/medicines", s.handleListMedicines)
		v1.GET("/clinics", s.handleListClinics)
		v1.GET("/questions", s.handleListQuestions)

		v1.POST("/records", s.handleCreateRecord)
		v1.GET("/records", s.handleListRecords)
		v1.GET("/records/:id", s.handleGetRecord)
		v1.DELETE("/records/:id", s.handleDeleteRecord)
		v1.GET("/patients/:id/records", s.handleListPatientRecords)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
	})
}
