package jobs

import (
	"context"
	"log/slog"
	"time"

	"parking-core/internal/pkg/clock"
	"parking-core/internal/usecase/queries"

	"github.com/riverqueue/river"
)

// MonthlyReportArgs is scheduled daily. Scheduled runs only report on the 1st;
// Manual runs always report.
type MonthlyReportArgs struct {
	Manual bool `json:"manual"`
}

func (MonthlyReportArgs) Kind() string { return "monthly_report" }

type MonthlyReportWorker struct {
	river.WorkerDefaults[MonthlyReportArgs]
	stats queries.StatsQueries
	clock clock.Clock
}

func NewMonthlyReportWorker(stats queries.StatsQueries, clk clock.Clock) *MonthlyReportWorker {
	return &MonthlyReportWorker{stats: stats, clock: clk}
}

func (w *MonthlyReportWorker) Work(ctx context.Context, job *river.Job[MonthlyReportArgs]) error {
	_, err := w.Run(ctx, job.Args)
	return err
}

// Run returns nil, nil when the report is not due.
func (w *MonthlyReportWorker) Run(ctx context.Context, args MonthlyReportArgs) (report *queries.PeriodReport, err error) {
	now := w.clock.Now()
	if !args.Manual && now.Day() != 1 {
		return nil, nil
	}
	defer observe(MonthlyReportArgs{}.Kind(), &err)

	from, to := PreviousMonth(now)
	report, err = w.stats.PeriodReport(ctx, from, to)
	if err != nil {
		return nil, err
	}

	slog.Info("Monthly report",
		"month", from.Format("2006-01"),
		"reservations", report.Reservations,
		"revenue", report.Revenue.StringFixed(2),
		"active_users", report.ActiveUsers,
	)
	return report, nil
}

// PreviousMonth returns [first of last month, first of this month).
func PreviousMonth(now time.Time) (time.Time, time.Time) {
	to := clock.StartOfMonth(now)
	return to.AddDate(0, -1, 0), to
}
