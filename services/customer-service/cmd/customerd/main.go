package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	pkgpostgres "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/infrastructure/config"
	pgRepo "github.com/PatriickRM/loan-banking-system/services/customer-service/internal/infrastructure/postgres"
	"github.com/PatriickRM/loan-banking-system/services/customer-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(cfg.Log)
	logger.Info("starting customer-service", "http_port", cfg.HTTPPort)

	// Database connection and migrations.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pkgpostgres.RunMigrations(cfg.DB.DSN(), "file://"+cfg.MigrationsDir); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// Repositories and use cases.
	customerRepo := pgRepo.NewCustomerRepo(pool)
	historyRepo := pgRepo.NewCreditHistoryRepo(pool)

	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, logger)
	updateUC := usecase.NewUpdateCustomerUseCase(customerRepo, logger)
	queryUC := usecase.NewQueryCustomersUseCase(customerRepo, historyRepo)

	// HTTP server.
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	rest.NewHandler(registerUC, updateUC, queryUC).Register(e)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(cfg.HTTPAddr()); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("customer-service stopped")
}
