//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/queries"
	cachemock "parking-core/tests/mock/cache"
	queriesmock "parking-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

type statsFixture struct {
	store *queriesmock.MockStatsReadStore
	cache *cachemock.MockCache
	q     queries.StatsQueries
}

func newStatsFixture(t *testing.T) statsFixture {
	ctrl := gomock.NewController(t)
	f := statsFixture{
		store: queriesmock.NewMockStatsReadStore(ctrl),
		cache: cachemock.NewMockCache(ctrl),
	}
	f.q = queries.NewStatsQueries(f.store, passthroughUoW(ctrl), f.cache, clock.NewMockClock(now), config.NewTestConfig())
	return f
}

func TestStatsQueries_Overview(t *testing.T) {
	stats := &queries.OverviewStats{
		TotalUsers:         4,
		TotalLots:          2,
		TotalSpots:         10,
		AvailableSpots:     7,
		OccupiedSpots:      3,
		ActiveReservations: 3,
		TodayRevenue:       decimal.RequireFromString("12.50"),
		MonthRevenue:       decimal.RequireFromString("240.75"),
	}

	t.Run("miss loads and stores", func(t *testing.T) {
		f := newStatsFixture(t)
		dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminStats).Return(nil, false, nil)
		f.store.EXPECT().Overview(gomock.Any(), gomock.Any(), dayStart, monthStart).Return(stats, nil)
		f.cache.EXPECT().Set(gomock.Any(), cache.KeyAdminStats, gomock.Any(), 5*time.Minute).
			DoAndReturn(func(_ context.Context, _ string, b []byte, _ time.Duration) error {
				var decoded queries.OverviewStats
				require.NoError(t, json.Unmarshal(b, &decoded))
				assert.Equal(t, int64(4), decoded.TotalUsers)
				assert.True(t, decoded.MonthRevenue.Equal(stats.MonthRevenue))
				return nil
			})

		got, err := f.q.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("hit skips the store", func(t *testing.T) {
		f := newStatsFixture(t)
		b, err := json.Marshal(stats)
		require.NoError(t, err)

		f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminStats).Return(b, true, nil)

		got, err := f.q.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.OccupiedSpots)
		assert.Equal(t, "240.75", got.MonthRevenue.StringFixed(2))
	})

	t.Run("cache outage falls back to the store", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminStats).Return(nil, false, errors.New("dial tcp: refused"))
		f.store.EXPECT().Overview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(stats, nil)
		f.cache.EXPECT().Set(gomock.Any(), cache.KeyAdminStats, gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))

		got, err := f.q.Overview(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("corrupt entry is treated as a miss", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminStats).Return([]byte("{not json"), true, nil)
		f.store.EXPECT().Overview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(stats, nil)
		f.cache.EXPECT().Set(gomock.Any(), cache.KeyAdminStats, gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.q.Overview(context.Background())

		require.NoError(t, err)
	})

	t.Run("store error is not cached", func(t *testing.T) {
		f := newStatsFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminStats).Return(nil, false, nil)
		f.store.EXPECT().Overview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := f.q.Overview(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestStatsQueries_Analytics(t *testing.T) {
	f := newStatsFixture(t)
	lotID := uuid.New()
	since := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	f.cache.EXPECT().Get(gomock.Any(), cache.KeyAdminAnalytics).Return(nil, false, nil)
	f.store.EXPECT().LotAnalytics(gomock.Any(), gomock.Any()).Return([]queries.LotAnalytics{
		{LotID: lotID, LotName: "Central", TotalReservations: 9, Revenue: decimal.NewFromInt(90)},
	}, nil)
	f.store.EXPECT().MonthlyCounts(gomock.Any(), gomock.Any(), since).Return([]queries.MonthlyCount{
		{Month: "2025-03", Reservations: 9},
	}, nil)
	f.cache.EXPECT().Set(gomock.Any(), cache.KeyAdminAnalytics, gomock.Any(), 10*time.Minute).Return(nil)

	got, err := f.q.Analytics(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Lots, 1)
	assert.Equal(t, lotID, got.Lots[0].LotID)
	assert.Equal(t, "2025-03", got.Monthly[0].Month)
}

func TestStatsQueries_Revenue(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("sums the window", func(t *testing.T) {
		f := newStatsFixture(t)
		f.store.EXPECT().Revenue(gomock.Any(), gomock.Any(), from, to).Return(decimal.RequireFromString("123.456"), nil)

		sum, err := f.q.Revenue(context.Background(), from, to)

		require.NoError(t, err)
		assert.Equal(t, "123.46", sum.StringFixed(2))
	})

	t.Run("reversed window", func(t *testing.T) {
		f := newStatsFixture(t)

		_, err := f.q.Revenue(context.Background(), to, from)

		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})
}

func TestStatsQueries_UserSummary(t *testing.T) {
	f := newStatsFixture(t)
	userID := uuid.New()
	summary := &queries.UserSummary{TotalReservations: 3, TotalSpent: decimal.NewFromInt(55), ThisMonth: 1}

	f.store.EXPECT().UserSummary(gomock.Any(), gomock.Any(), userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).Return(summary, nil)

	got, err := f.q.UserSummary(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestStatsQueries_PeriodReport(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("delegates to the store", func(t *testing.T) {
		f := newStatsFixture(t)
		report := &queries.PeriodReport{From: from, To: to, Reservations: 20, Revenue: decimal.NewFromInt(400), ActiveUsers: 6}
		f.store.EXPECT().PeriodReport(gomock.Any(), gomock.Any(), from, to).Return(report, nil)

		got, err := f.q.PeriodReport(context.Background(), from, to)

		require.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("reversed window", func(t *testing.T) {
		f := newStatsFixture(t)

		_, err := f.q.PeriodReport(context.Background(), to, from)

		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})
}
