package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"breast-cancer-api/internal/adapters/primary/http/handlers"
	"breast-cancer-api/internal/adapters/primary/http/middleware"
	"breast-cancer-api/internal/adapters/secondary/mlp"
	"breast-cancer-api/internal/config"
	"breast-cancer-api/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	closeLog := initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		log.Errorf("%v", err)
		closeLog()
		os.Exit(1)
	}

	log.Info("server stopped")
	closeLog()
}

// run loads the model, then serves until ctx is cancelled. Nothing listens
// unless the model loaded.
func run(ctx context.Context, cfg *config.Config) error {
	router, err := newRouter(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config) (*gin.Engine, error) {
	model, err := mlp.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	info := model.Describe()
	log.WithFields(log.Fields{
		"path":        cfg.Model.Path,
		"layer_sizes": info.LayerSizes,
		"activation":  info.HiddenActivation,
		"scaled":      info.Standardized,
	}).Info("model loaded")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	predictionSvc := services.NewPredictionService(model)

	h, err := handlers.New(predictionSvc)
	if err != nil {
		return nil, fmt.Errorf("init handlers: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Recovery(),
	)
	h.RegisterRoutes(router)
	return router, nil
}

// initLogger configures the package-level logger and returns a function that
// closes the log file, if any.
func initLogger(cfg *config.Config) func() {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Logger.File.Path == "" {
		return func() {}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Logger.File.Path,
		MaxSize:    cfg.Logger.File.MaxSizeMB,
		MaxBackups: cfg.Logger.File.MaxBackups,
		MaxAge:     cfg.Logger.File.MaxAgeDays,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	return func() { _ = file.Close() }
}
