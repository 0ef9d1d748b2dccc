//go:build unit

package jobs_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"parking-core/internal/domain/billing"
	"parking-core/internal/infra/jobs"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/usecase/queries"
	"parking-core/internal/usecase/shared"
	queriesmock "parking-core/tests/mock/queries"
	sharedmock "parking-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func exportRows() []*queries.ExportRow {
	end := start.Add(90 * time.Minute)
	cost := decimal.RequireFromString("60")
	return []*queries.ExportRow{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			LotName:       "Central, East",
			SpotNumber:    "Central-001",
			VehicleNumber: "KA01AB1234",
			StartTime:     start,
			EndTime:       &end,
			Cost:          &cost,
			Status:        "completed",
			CreatedAt:     start,
		},
		{
			ID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			LotName:       "North",
			SpotNumber:    "North-004",
			VehicleNumber: "KA02",
			StartTime:     start,
			Status:        "active",
			CreatedAt:     start,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, jobs.WriteCSV(&buf, exportRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{
		"Reservation ID", "Parking Lot", "Spot Number", "Vehicle Number", "Start Time",
		"End Time", "Duration (Hours)", "Cost", "Status", "Created",
	}, records[0])
	assert.Equal(t, []string{
		"11111111-1111-1111-1111-111111111111", "Central, East", "Central-001", "KA01AB1234",
		"2025-03-01 09:00:00", "2025-03-01 10:30:00", "1.50", "60.00", "completed", "2025-03-01 09:00:00",
	}, records[1])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][6])
	assert.Equal(t, "", records[2][7])
}

func TestWriteCSV_DurationMatchesBilling(t *testing.T) {
	end := start.Add(time.Hour + 18*time.Second)
	skewed := start.Add(-time.Minute)
	rows := []*queries.ExportRow{
		{ID: uuid.New(), StartTime: start, EndTime: &end, Status: "completed", CreatedAt: start},
		{ID: uuid.New(), StartTime: start, EndTime: &skewed, Status: "completed", CreatedAt: start},
	}
	var buf bytes.Buffer

	require.NoError(t, jobs.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, billing.DurationHours(start, end).StringFixed(2), records[1][6])
	assert.Equal(t, "1.01", records[1][6])
	assert.Equal(t, "0.00", records[2][6], "clock skew never reports a negative duration")
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, jobs.WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportFilename(t *testing.T) {
	userID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	at := time.Date(2025, 3, 1, 18, 5, 9, 0, time.FixedZone("IST", 5*3600+1800))

	name := jobs.ExportFilename(userID, at.Add(250*time.Millisecond))

	assert.Regexp(t, `^33333333-3333-3333-3333-333333333333_reservations_20250301T123509250_[0-9a-f]{8}\.csv$`, name)
	assert.True(t, jobs.OwnsExport(name, userID))
	assert.False(t, jobs.OwnsExport(name, uuid.New()))
	_, err := jobs.ExportPath("/srv/exports", name)
	assert.NoError(t, err)
}

func TestExportFilename_SameInstantDiffers(t *testing.T) {
	userID := uuid.New()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		name := jobs.ExportFilename(userID, start)
		assert.False(t, seen[name], "duplicate export name %s", name)
		seen[name] = true
	}
}

func TestListExports(t *testing.T) {
	t.Run("missing directory is empty", func(t *testing.T) {
		files, err := jobs.ListExports(filepath.Join(t.TempDir(), "nope"))

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("lists csv files newest first and skips the rest", func(t *testing.T) {
		dir := t.TempDir()
		older := filepath.Join(dir, "a_reservations_1.csv")
		newer := filepath.Join(dir, "b_reservations_2.csv")
		require.NoError(t, os.WriteFile(older, []byte("x"), 0o600))
		require.NoError(t, os.WriteFile(newer, []byte("xyz"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "c.csv.99.tmp"), []byte("x"), 0o600))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))
		require.NoError(t, os.Chtimes(older, start, start))
		require.NoError(t, os.Chtimes(newer, start.Add(time.Hour), start.Add(time.Hour)))

		files, err := jobs.ListExports(dir)

		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "b_reservations_2.csv", files[0].Filename)
		assert.Equal(t, int64(3), files[0].Size)
		assert.Equal(t, "a_reservations_1.csv", files[1].Filename)
	})
}

func TestStatusFromRow(t *testing.T) {
	owner := uuid.New()
	finished := start.Add(time.Minute)

	t.Run("export rows carry the requester and file", func(t *testing.T) {
		encoded, err := json.Marshal(jobs.ExportArgs{Filename: "f.csv", RequestedBy: owner})
		require.NoError(t, err)

		status := jobs.StatusFromRow(&rivertype.JobRow{
			ID:          42,
			Kind:        "export_reservations",
			State:       rivertype.JobStateCompleted,
			Attempt:     2,
			MaxAttempts: 25,
			CreatedAt:   start,
			FinalizedAt: &finished,
			EncodedArgs: encoded,
			Errors:      []rivertype.AttemptError{{Attempt: 1, Error: "disk full"}},
		})

		assert.Equal(t, int64(42), status.ID)
		assert.Equal(t, "completed", status.State)
		assert.Equal(t, "f.csv", status.Filename)
		require.NotNil(t, status.RequestedBy)
		assert.Equal(t, owner, *status.RequestedBy)
		assert.Equal(t, []string{"disk full"}, status.Errors)
		assert.Equal(t, &finished, status.FinalizedAt)
	})

	t.Run("other kinds have no requester", func(t *testing.T) {
		status := jobs.StatusFromRow(&rivertype.JobRow{
			ID:          7,
			Kind:        "monthly_report",
			State:       rivertype.JobStateAvailable,
			EncodedArgs: []byte(`{"manual":true}`),
		})

		assert.Nil(t, status.RequestedBy)
		assert.Empty(t, status.Filename)
		assert.Equal(t, "available", status.State)
	})
}

func TestExportPath(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "bare csv", filename: "abc_reservations_1.csv"},
		{name: "empty", filename: "", wantErr: true},
		{name: "traversal", filename: "../etc/passwd.csv", wantErr: true},
		{name: "nested", filename: "a/b.csv", wantErr: true},
		{name: "not csv", filename: "passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := jobs.ExportPath("/srv/exports", tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/srv/exports", tt.filename), path)
		})
	}
}

func TestExportWorker_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := queriesmock.NewMockReservationQueries(ctrl)
	dir := filepath.Join(t.TempDir(), "exports")
	userID := uuid.New()
	from := start.Add(-24 * time.Hour)
	args := jobs.ExportArgs{Filename: jobs.ExportFilename(userID, start), UserID: &userID, From: &from}

	reservations.EXPECT().
		ForExport(gomock.Any(), queries.ExportFilter{UserID: &userID, From: &from}).
		Return(exportRows(), nil)

	require.NoError(t, jobs.NewExportWorker(reservations, dir).Export(context.Background(), args))

	f, err := os.Open(filepath.Join(dir, args.Filename))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestExportWorker_QueryFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := queriesmock.NewMockReservationQueries(ctrl)
	dir := t.TempDir()

	reservations.EXPECT().ForExport(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := jobs.NewExportWorker(reservations, dir).Export(context.Background(), jobs.ExportArgs{Filename: "x.csv"})

	assert.ErrorIs(t, err, assert.AnError)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestExportWorker_RejectsBadFilename(t *testing.T) {
	ctrl := gomock.NewController(t)

	err := jobs.NewExportWorker(queriesmock.NewMockReservationQueries(ctrl), t.TempDir()).
		Export(context.Background(), jobs.ExportArgs{Filename: "../x.csv"})

	assert.Error(t, err)
}

func TestPreviousMonth(t *testing.T) {
	from, to := jobs.PreviousMonth(time.Date(2025, 1, 1, 0, 10, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthlyReportWorker_Run(t *testing.T) {
	report := &queries.PeriodReport{Reservations: 12, Revenue: decimal.NewFromInt(300), ActiveUsers: 4}

	t.Run("scheduled run on the 1st reports the previous month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := queriesmock.NewMockStatsQueries(ctrl)
		clk := clock.NewMockClock(time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC))
		stats.EXPECT().
			PeriodReport(gomock.Any(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(report, nil)

		got, err := jobs.NewMonthlyReportWorker(stats, clk).Run(context.Background(), jobs.MonthlyReportArgs{})

		require.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("scheduled run mid-month is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := queriesmock.NewMockStatsQueries(ctrl)
		clk := clock.NewMockClock(time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC))

		got, err := jobs.NewMonthlyReportWorker(stats, clk).Run(context.Background(), jobs.MonthlyReportArgs{})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("manual run mid-month reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stats := queriesmock.NewMockStatsQueries(ctrl)
		clk := clock.NewMockClock(time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC))
		stats.EXPECT().PeriodReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(report, nil)

		got, err := jobs.NewMonthlyReportWorker(stats, clk).Run(context.Background(), jobs.MonthlyReportArgs{Manual: true})

		require.NoError(t, err)
		assert.Equal(t, report, got)
	})
}

func TestSweeper_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)

	t.Run("deletes terminal rows older than the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		repo := sharedmock.NewMockReservationRepository(ctrl)

		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			})
		tx.EXPECT().Reservations().Return(repo)
		tx.EXPECT().DB().Return(nil)
		repo.EXPECT().DeleteTerminalBefore(gomock.Any(), nil, now.Add(-365*24*time.Hour)).Return(int64(7), nil)

		n, err := jobs.NewSweeper(uow, clock.NewMockClock(now), 365*24*time.Hour).Sweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(assert.AnError)

		n, err := jobs.NewSweeper(uow, clock.NewMockClock(now), time.Hour).Sweep(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, n)
	})
}
