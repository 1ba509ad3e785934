package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/toxicity-api/internal/adapter/client"
	"github.com/ressKim-io/toxicity-api/internal/adapter/http/router"
	"github.com/ressKim-io/toxicity-api/internal/infrastructure/config"
	"github.com/ressKim-io/toxicity-api/internal/infrastructure/logger"
	"github.com/ressKim-io/toxicity-api/internal/infrastructure/metrics"
	"github.com/ressKim-io/toxicity-api/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.ConfigFile != "" {
		log.Info("Loaded config file", zap.String("file", cfg.ConfigFile))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Classifier: one shared client for the lifetime of the process
	mlClient := client.NewMLClient(cfg.Classifier.BaseURL, cfg.Classifier.APIToken, cfg.Classifier.HTTPTimeout)
	mlClassifier := client.NewMLClassifier(mlClient)
	classifier := client.NewLimitedClassifier(mlClassifier, int64(cfg.Classifier.MaxConcurrent))

	probeCtx, cancelProbe := context.WithTimeout(context.Background(), cfg.Classifier.HTTPTimeout)
	if err := mlClassifier.Health(probeCtx); err != nil {
		log.Warn("Model server not reachable yet, continuing",
			zap.String("base_url", cfg.Classifier.BaseURL),
			zap.Error(err),
		)
	} else {
		log.Info("Connected to model server", zap.String("base_url", cfg.Classifier.BaseURL))
	}
	cancelProbe()

	predictUC := usecase.NewPredictUsecase(classifier, cfg.Classifier.RequestTimeout, m, log)

	// Setup router
	r := router.Setup(router.Deps{
		PredictUsecase: predictUC,
		HealthChecker:  mlClassifier,
		Logger:         log,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
	})

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
