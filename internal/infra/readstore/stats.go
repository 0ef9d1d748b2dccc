package readstore

import (
	"context"
	"time"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

type StatsReadQueries interface {
	GetOverviewStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOverviewStatsParams) (sqlc.GetOverviewStatsRow, error)
	GetRevenueBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRevenueBetweenParams) (pgtype.Numeric, error)
	GetLotAnalytics(ctx context.Context, db sqlc.DBTX) ([]sqlc.GetLotAnalyticsRow, error)
	GetMonthlyReservationCounts(ctx context.Context, db sqlc.DBTX, since pgtype.Timestamptz) ([]sqlc.GetMonthlyReservationCountsRow, error)
	GetUserSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUserSummaryParams) (sqlc.GetUserSummaryRow, error)
	GetPeriodReport(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPeriodReportParams) (sqlc.GetPeriodReportRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
}

func NewStatsReadStore(queries StatsReadQueries) *StatsReadStore {
	return &StatsReadStore{queries: queries}
}

func (r *StatsReadStore) Overview(ctx context.Context, db sqlc.DBTX, dayStart, monthStart time.Time) (*queries.OverviewStats, error) {
	row, err := r.queries.GetOverviewStats(ctx, db, sqlc.GetOverviewStatsParams{
		DayStart:   pgconv.TimeToPgtype(dayStart),
		MonthStart: pgconv.TimeToPgtype(monthStart),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get overview stats", err)
	}

	today, err := revenue(row.TodayRevenue)
	if err != nil {
		return nil, err
	}
	month, err := revenue(row.MonthRevenue)
	if err != nil {
		return nil, err
	}

	return &queries.OverviewStats{
		TotalUsers:         row.TotalUsers,
		TotalLots:          row.TotalLots,
		TotalSpots:         row.TotalSpots,
		AvailableSpots:     row.AvailableSpots,
		OccupiedSpots:      row.OccupiedSpots,
		ActiveReservations: row.ActiveReservations,
		TodayRevenue:       today,
		MonthRevenue:       month,
	}, nil
}

func (r *StatsReadStore) Revenue(ctx context.Context, db sqlc.DBTX, from, to time.Time) (decimal.Decimal, error) {
	n, err := r.queries.GetRevenueBetween(ctx, db, sqlc.GetRevenueBetweenParams{
		FromAt: pgconv.TimeToPgtype(from),
		ToAt:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum revenue", err)
	}
	return revenue(n)
}

func (r *StatsReadStore) LotAnalytics(ctx context.Context, db sqlc.DBTX) ([]queries.LotAnalytics, error) {
	rows, err := r.queries.GetLotAnalytics(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get lot analytics", err)
	}
	out := make([]queries.LotAnalytics, 0, len(rows))
	for _, row := range rows {
		rev, err := revenue(row.Revenue)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.LotAnalytics{
			LotID:             row.LotID,
			LotName:           row.LotName,
			TotalReservations: row.TotalReservations,
			Revenue:           rev,
		})
	}
	return out, nil
}

func (r *StatsReadStore) MonthlyCounts(ctx context.Context, db sqlc.DBTX, since time.Time) ([]queries.MonthlyCount, error) {
	rows, err := r.queries.GetMonthlyReservationCounts(ctx, db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get monthly reservation counts", err)
	}
	out := make([]queries.MonthlyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.MonthlyCount{
			Month:        row.Month.Time.UTC().Format(monthLayout),
			Reservations: row.Reservations,
		})
	}
	return out, nil
}

func (r *StatsReadStore) UserSummary(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, monthStart time.Time) (*queries.UserSummary, error) {
	row, err := r.queries.GetUserSummary(ctx, db, sqlc.GetUserSummaryParams{
		UserID:     userID,
		MonthStart: pgconv.TimeToPgtype(monthStart),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user summary", err)
	}
	spent, err := revenue(row.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &queries.UserSummary{
		TotalReservations: row.TotalReservations,
		TotalSpent:        spent,
		ThisMonth:         row.ThisMonth,
	}, nil
}

func (r *StatsReadStore) PeriodReport(ctx context.Context, db sqlc.DBTX, from, to time.Time) (*queries.PeriodReport, error) {
	row, err := r.queries.GetPeriodReport(ctx, db, sqlc.GetPeriodReportParams{
		FromAt: pgconv.TimeToPgtype(from),
		ToAt:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get period report", err)
	}
	rev, err := revenue(row.Revenue)
	if err != nil {
		return nil, err
	}
	return &queries.PeriodReport{
		From:         from,
		To:           to,
		Reservations: row.Reservations,
		Revenue:      rev,
		ActiveUsers:  row.ActiveUsers,
	}, nil
}

// revenue treats a NULL sum as zero and normalises to two places.
func revenue(n pgtype.Numeric) (decimal.Decimal, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid revenue", err)
	}
	return d.Round(2), nil
}
