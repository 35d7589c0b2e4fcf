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
	"github.com/redis/go-redis/v9"

	"github.com/PatriickRM/loan-banking-system/pkg/events"
	pkgkafka "github.com/PatriickRM/loan-banking-system/pkg/kafka"
	"github.com/PatriickRM/loan-banking-system/pkg/observability"
	pkgpostgres "github.com/PatriickRM/loan-banking-system/pkg/postgres"
	"github.com/PatriickRM/loan-banking-system/pkg/resilience"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/infrastructure/adapter"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/infrastructure/config"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/infrastructure/messaging"
	pgRepo "github.com/PatriickRM/loan-banking-system/services/payment-service/internal/infrastructure/postgres"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/infrastructure/scheduler"
	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(cfg.Log)
	logger.Info("starting payment-service", "http_port", cfg.HTTPPort)

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
	scheduleRepo := pgRepo.NewScheduleRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	outboxRepo := pkgpostgres.NewOutboxRepo(pool)

	producer := pkgkafka.NewProducer(cfg.Kafka)
	defer producer.Close()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	loanBreaker := resilience.New("loan-service", 5*time.Second)
	loans := adapter.NewLoanClient(cfg.LoanServiceURL, loanBreaker)

	// Use cases.
	generateScheduleUC := usecase.NewGenerateScheduleUseCase(scheduleRepo, logger)
	processPaymentUC := usecase.NewProcessPaymentUseCase(scheduleRepo, paymentRepo, loans, logger)
	queryPaymentsUC := usecase.NewQueryPaymentsUseCase(paymentRepo)
	queryScheduleUC := usecase.NewQueryScheduleUseCase(scheduleRepo)
	scanOverdueUC := usecase.NewScanOverdueUseCase(scheduleRepo, loans,
		messaging.NewOverduePublisher(producer), logger)

	// Outbox relay publishes committed events to the broker.
	relay := events.NewRelay(outboxRepo, pkgkafka.NewOutboxPublisher(producer), logger, time.Second, 100)
	go relay.Run(ctx)

	// Daily overdue sweep.
	overdueScheduler, err := scheduler.NewOverdueScheduler(rdb, scanOverdueUC, cfg.OverdueCronSpec, logger)
	if err != nil {
		logger.Error("invalid overdue cron spec", "spec", cfg.OverdueCronSpec, "error", err)
		os.Exit(1)
	}
	overdueScheduler.Start()

	// Event consumers.
	mux := messaging.NewMux(generateScheduleUC, logger)
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
	rest.NewHandler(processPaymentUC, queryPaymentsUC, queryScheduleUC).Register(e)

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

	<-overdueScheduler.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("payment-service stopped")
}
