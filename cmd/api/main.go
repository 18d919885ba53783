package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/boring-ventures/billiards-management/internal/di"
	"github.com/boring-ventures/billiards-management/internal/handler"
	"github.com/boring-ventures/billiards-management/pkg/config"
	"github.com/boring-ventures/billiards-management/pkg/logger"
	"github.com/boring-ventures/billiards-management/pkg/middleware"
	"github.com/boring-ventures/billiards-management/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	container, err := di.NewContainer(startupCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}
	defer container.Close()

	recorder := middleware.NewAuditRecorder(middleware.AuditConfig{
		DB:        container.DB.Pool(),
		SkipPaths: []string{"/health/live", "/health/ready"},
	})
	defer recorder.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID())

	handler.RegisterRoutes(engine, &handler.RouterConfig{
		Health:    container.HealthHandler,
		Auth:      container.AuthHandler,
		Company:   container.CompanyHandler,
		Venue:     container.VenueHandler,
		Inventory: container.InventoryHandler,
		POS:       container.POSHandler,
		Finance:   container.FinanceHandler,
		Dashboard: container.DashboardHandler,

		JWT: middleware.JWTMiddleware(&middleware.JWTConfig{
			Secret: cfg.JWT.Secret,
		}),
		CompanyScope: middleware.CompanyScope(container.Resolver, container.Selections),
		Audit:        middleware.Audit(recorder),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("telemetry shutdown failed", zap.Error(err))
	}

	return nil
}
