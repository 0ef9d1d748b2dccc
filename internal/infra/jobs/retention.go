package jobs

import (
	"context"
	"log/slog"
	"time"

	"parking-core/internal/infra/metrics"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/usecase/shared"

	"github.com/riverqueue/river"
)

type RetentionArgs struct{}

func (RetentionArgs) Kind() string { return "retention_sweep" }

// Sweeper deletes completed and cancelled reservations older than the
// retention window. Active rows are never touched.
type Sweeper struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	retention time.Duration
}

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, retention time.Duration) *Sweeper {
	return &Sweeper{uow: uow, clock: clk, retention: retention}
}

func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.retention)

	var deleted int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Reservations().DeleteTerminalBefore(ctx, tx.DB(), cutoff)
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Retention sweep finished", "cutoff", cutoff, "deleted", deleted)
	return deleted, nil
}

type RetentionWorker struct {
	river.WorkerDefaults[RetentionArgs]
	sweeper *Sweeper
}

func NewRetentionWorker(sweeper *Sweeper) *RetentionWorker {
	return &RetentionWorker{sweeper: sweeper}
}

func (w *RetentionWorker) Work(ctx context.Context, job *river.Job[RetentionArgs]) (err error) {
	defer observe(job.Kind, &err)
	_, err = w.sweeper.Sweep(ctx)
	return err
}

func observe(kind string, err *error) {
	metrics.JobRunsTotal.WithLabelValues(kind, metrics.Outcome(*err)).Inc()
	if *err != nil {
		slog.Error("job failed", "kind", kind, "error", (*err).Error())
	}
}
