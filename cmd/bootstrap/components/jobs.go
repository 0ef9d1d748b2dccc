package components

import (
	"context"
	"log/slog"

	"parking-core/internal/infra/cache"
	"parking-core/internal/infra/jobs"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/config"
	"parking-core/internal/usecase/queries"
	"parking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var workersOption = fx.Provide(
	NewSweeper,
	jobs.NewRetentionWorker,
	jobs.NewMonthlyReportWorker,
	NewExportWorker,
	NewReminderWorker,
	func(r *jobs.RetentionWorker, m *jobs.MonthlyReportWorker, e *jobs.ExportWorker, rm *jobs.ReminderWorker) jobs.Workers {
		return jobs.Workers{Retention: r, Report: m, Export: e, Reminder: rm}
	},
)

// JobsModule gives the API server an Enqueuer; it works jobs only when JOBS_EMBEDDED is set.
var JobsModule = fx.Module("jobs",
	workersOption,
	fx.Provide(
		fx.Annotate(
			NewServerJobClient,
			fx.As(new(jobs.Enqueuer)),
		),
	),
)

var WorkerModule = fx.Module("jobs/worker",
	workersOption,
	fx.Provide(NewWorkerJobClient),
	fx.Invoke(func(*jobs.Client) {}),
)

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *jobs.Sweeper {
	return jobs.NewSweeper(uow, clk, cfg.Jobs.Retention())
}

func NewExportWorker(reservations queries.ReservationQueries, cfg config.Config) *jobs.ExportWorker {
	return jobs.NewExportWorker(reservations, cfg.Jobs.ExportDir)
}

func NewReminderWorker(users queries.UserQueries, c cache.Cache, clk clock.Clock, cfg config.Config) *jobs.ReminderWorker {
	return jobs.NewReminderWorker(users, c, clk, cfg.Jobs.ReminderIdle())
}

func NewServerJobClient(
	lc fx.Lifecycle,
	pool *pgxpool.Pool,
	cfg config.Config,
	logger *slog.Logger,
	clk clock.Clock,
	workers jobs.Workers,
) (*jobs.Client, error) {
	if !cfg.Jobs.Embedded {
		return jobs.NewInsertOnlyClient(pool, logger, clk)
	}
	return NewWorkerJobClient(lc, pool, cfg, logger, clk, workers)
}

func NewWorkerJobClient(
	lc fx.Lifecycle,
	pool *pgxpool.Pool,
	cfg config.Config,
	logger *slog.Logger,
	clk clock.Clock,
	workers jobs.Workers,
) (*jobs.Client, error) {
	client, err := jobs.NewWorkerClient(pool, cfg.Jobs, logger, clk, workers)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// River stops when its start context ends, so it must outlive the fx start timeout
			return client.Start(context.Background())
		},
		OnStop: client.Stop,
	})

	return client, nil
}
