package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parking-core/internal/infra/cache"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const analyticsMonths = 12

type StatsQueries interface {
	Overview(ctx context.Context) (*OverviewStats, error)
	Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	Analytics(ctx context.Context) (*Analytics, error)
	UserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error)
	PeriodReport(ctx context.Context, from, to time.Time) (*PeriodReport, error)
}

type StatsReadStore interface {
	Overview(ctx context.Context, db sqlc.DBTX, dayStart, monthStart time.Time) (*OverviewStats, error)
	Revenue(ctx context.Context, db sqlc.DBTX, from, to time.Time) (decimal.Decimal, error)
	LotAnalytics(ctx context.Context, db sqlc.DBTX) ([]LotAnalytics, error)
	MonthlyCounts(ctx context.Context, db sqlc.DBTX, since time.Time) ([]MonthlyCount, error)
	UserSummary(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, monthStart time.Time) (*UserSummary, error)
	PeriodReport(ctx context.Context, db sqlc.DBTX, from, to time.Time) (*PeriodReport, error)
}

type statsQueriesImpl struct {
	store        StatsReadStore
	uow          shared.UnitOfWork
	cache        cache.Cache
	clock        clock.Clock
	statsTTL     time.Duration
	analyticsTTL time.Duration
}

func NewStatsQueries(
	store StatsReadStore,
	uow shared.UnitOfWork,
	c cache.Cache,
	clk clock.Clock,
	cfg config.Config,
) StatsQueries {
	return &statsQueriesImpl{
		store:        store,
		uow:          uow,
		cache:        c,
		clock:        clk,
		statsTTL:     cfg.Cache.StatsTTL,
		analyticsTTL: cfg.Cache.AnalyticsTTL,
	}
}

func (q *statsQueriesImpl) Overview(ctx context.Context) (*OverviewStats, error) {
	var out OverviewStats
	if q.cached(ctx, cache.KeyAdminStats, &out) {
		return &out, nil
	}

	now := q.clock.Now()
	var stats *OverviewStats
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		stats, err = q.store.Overview(ctx, db, clock.StartOfDay(now), clock.StartOfMonth(now))
		return err
	})
	if err != nil {
		return nil, err
	}

	q.remember(ctx, cache.KeyAdminStats, stats, q.statsTTL)
	return stats, nil
}

func (q *statsQueriesImpl) Revenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if to.Before(from) {
		return decimal.Zero, errs.Wrap(ErrInvalidFilter, "to is before from")
	}
	var sum decimal.Decimal
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		sum, err = q.store.Revenue(ctx, db, from, to)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (q *statsQueriesImpl) Analytics(ctx context.Context) (*Analytics, error) {
	var out Analytics
	if q.cached(ctx, cache.KeyAdminAnalytics, &out) {
		return &out, nil
	}

	since := clock.StartOfMonth(q.clock.Now()).AddDate(0, -(analyticsMonths - 1), 0)
	result := &Analytics{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if result.Lots, err = q.store.LotAnalytics(ctx, db); err != nil {
			return err
		}
		result.Monthly, err = q.store.MonthlyCounts(ctx, db, since)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.remember(ctx, cache.KeyAdminAnalytics, result, q.analyticsTTL)
	return result, nil
}

func (q *statsQueriesImpl) UserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error) {
	monthStart := clock.StartOfMonth(q.clock.Now())
	var summary *UserSummary
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		summary, err = q.store.UserSummary(ctx, db, userID, monthStart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (q *statsQueriesImpl) PeriodReport(ctx context.Context, from, to time.Time) (*PeriodReport, error) {
	if to.Before(from) {
		return nil, errs.Wrap(ErrInvalidFilter, "to is before from")
	}
	var report *PeriodReport
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		report, err = q.store.PeriodReport(ctx, db, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// cached decodes key into dst. Cache errors count as a miss.
func (q *statsQueriesImpl) cached(ctx context.Context, key string, dst any) bool {
	b, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Stats cache read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		slog.Warn("Stats cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (q *statsQueriesImpl) remember(ctx context.Context, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Stats cache encode failed", "key", key, "error", err)
		return
	}
	if err := q.cache.Set(ctx, key, b, ttl); err != nil {
		slog.Warn("Stats cache write failed", "key", key, "error", err)
	}
}
