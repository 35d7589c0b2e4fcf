package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/PatriickRM/loan-banking-system/services/payment-service/internal/application/usecase"
)

const scanTimeout = 10 * time.Minute

// OverdueScheduler runs the overdue sweep on a cron schedule. A Redis
// SETNX lease keyed by date keeps the sweep to a single run per day when
// multiple instances are deployed; losing the lease is the normal case
// for all but one instance.
type OverdueScheduler struct {
	cron   *cron.Cron
	redis  *redis.Client
	scan   *usecase.ScanOverdueUseCase
	logger *slog.Logger
}

// NewOverdueScheduler registers the sweep at the given cron spec,
// e.g. "0 8 * * *" for daily at 08:00.
func NewOverdueScheduler(rdb *redis.Client, scan *usecase.ScanOverdueUseCase, spec string, logger *slog.Logger) (*OverdueScheduler, error) {
	s := &OverdueScheduler{
		cron:   cron.New(),
		redis:  rdb,
		scan:   scan,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins scheduling in its own goroutine.
func (s *OverdueScheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and returns a context that is done once any
// running sweep has finished.
func (s *OverdueScheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *OverdueScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	key := "overdue-scan:" + time.Now().UTC().Format("2006-01-02")
	acquired, err := s.redis.SetNX(ctx, key, "locked", 24*time.Hour).Result()
	if err != nil {
		s.logger.Error("overdue scan lease check failed", slog.String("error", err.Error()))
		return
	}
	if !acquired {
		s.logger.Info("overdue scan already ran today, skipping", slog.String("lease", key))
		return
	}

	if err := s.scan.Execute(ctx); err != nil {
		s.logger.Error("overdue scan failed", slog.String("error", err.Error()))
	}
}
