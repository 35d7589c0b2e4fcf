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

	"github.com/PatriickRM/loan-banking-system/pkg/events"
	pkgkafka "github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	pkgpostgres "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/pkg/resilience"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/infrastructure/adapter"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/infrastructure/config"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/infrastructure/messaging"
	pgRepo "github.com/PatriickRM/loan-banking-system/services/loan-service/internal/infrastructure/postgres"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(cfg.Log)
	logger.Info("starting loan-service", "http_port", cfg.HTTPPort)

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

	// Infrastructure adapters.
	loanRepo := pgRepo.NewLoanRepo(pool)
	productRepo := pgRepo.NewProductRepo(pool)
	outboxRepo := pkgpostgres.NewOutboxRepo(pool)

	producer := pkgkafka.NewProducer(cfg.Kafka)
	defer producer.Close()

	customerBreaker := resilience.New("customer-service", 5*time.Second)
	customers := adapter.NewCustomerClient(cfg.CustomerServiceURL, customerBreaker)

	// Use cases.
	createLoanUC := usecase.NewCreateLoanUseCase(loanRepo, productRepo, customers, logger)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo, customers, logger)
	listLoansUC := usecase.NewListLoansUseCase(loanRepo)
	decideLoanUC := usecase.NewDecideLoanUseCase(loanRepo)
	listProductsUC := usecase.NewListProductsUseCase(productRepo)
	applyPaymentUC := usecase.NewApplyPaymentUseCase(loanRepo, logger)

	// Outbox relay publishes committed events to the broker.
	relay := events.NewRelay(outboxRepo, pkgkafka.NewOutboxPublisher(producer), logger, time.Second, 100)
	go relay.Run(ctx)

	// Event consumers.
	mux := messaging.NewMux(applyPaymentUC, logger)
	errCh := make(chan error, len(mux.Topics())+1)
	for _, topic := range mux.Topics() {
		topic := topic
		consumer := pkgkafka.NewConsumer(cfg.Kafka, topic, mux.Dispatch(topic), logger)
		defer consumer.Close()
		go func() {
			if err := consumer.Start(ctx); err != nil {
				errCh <- fmt.Errorf("consumer %s: %w", topic, err)
			}
		}()
	}

	// HTTP server.
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	rest.NewHandler(createLoanUC, getLoanUC, listLoansUC, decideLoanUC, listProductsUC).Register(e)

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
	logger.Info("loan-service stopped")
}
