package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
)

var ErrJobNotFound = errs.Sentinel("job not found", errs.KindNotFound)

// Enqueuer is what request handlers see of the job system.
type Enqueuer interface {
	EnqueueExport(ctx context.Context, req ExportRequest) (*Enqueued, error)
	EnqueueMonthlyReport(ctx context.Context) (*Enqueued, error)
	JobStatus(ctx context.Context, id int64) (*JobStatus, error)
}

// Enqueued identifies a queued job. Filename is set for exports only.
type Enqueued struct {
	JobID    int64
	Filename string
}

type JobStatus struct {
	ID          int64
	Kind        string
	State       string
	Attempt     int
	MaxAttempts int
	Errors      []string
	CreatedAt   time.Time
	FinalizedAt *time.Time
	RequestedBy *uuid.UUID
	Filename    string
}

// Workers bundles every worker the client can run.
type Workers struct {
	Retention *RetentionWorker
	Report    *MonthlyReportWorker
	Export    *ExportWorker
	Reminder  *ReminderWorker
}

type Client struct {
	river   *river.Client[pgx.Tx]
	working bool
	clock   clock.Clock
}

// NewInsertOnlyClient can enqueue jobs but never works them.
func NewInsertOnlyClient(pool *pgxpool.Pool, logger *slog.Logger, clk clock.Clock) (*Client, error) {
	rc, err := river.NewClient(riverpgxv5.New(pool), &river.Config{Logger: logger})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create river client")
	}
	return &Client{river: rc, clock: clk}, nil
}

// NewWorkerClient registers all workers and the periodic schedule.
func NewWorkerClient(pool *pgxpool.Pool, cfg config.JobsConfig, logger *slog.Logger, clk clock.Clock, w Workers) (*Client, error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, w.Retention)
	river.AddWorker(workers, w.Report)
	river.AddWorker(workers, w.Export)
	river.AddWorker(workers, w.Reminder)

	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	rc, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Logger: logger,
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create river worker client")
	}
	return &Client{river: rc, working: true, clock: clk}, nil
}

func periodicJobs() []*river.PeriodicJob {
	daily := func(args river.JobArgs) *river.PeriodicJob {
		return river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) { return args, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		)
	}
	return []*river.PeriodicJob{
		daily(RetentionArgs{}),
		daily(MonthlyReportArgs{}),
		daily(ReminderArgs{}),
	}
}

func (c *Client) Start(ctx context.Context) error {
	if !c.working {
		return nil
	}
	slog.Info("Starting river worker")
	return c.river.Start(ctx)
}

func (c *Client) Stop(ctx context.Context) error {
	if !c.working {
		return nil
	}
	slog.Info("Stopping river worker")
	return c.river.Stop(ctx)
}

func (c *Client) EnqueueExport(ctx context.Context, req ExportRequest) (*Enqueued, error) {
	filename := ExportFilename(req.RequestedBy, c.clock.Now())
	res, err := c.river.Insert(ctx, ExportArgs{
		Filename:    filename,
		RequestedBy: req.RequestedBy,
		UserID:      req.UserID,
		From:        req.From,
		To:          req.To,
	}, nil)
	if err != nil {
		slog.Error("failed to enqueue export", "requested_by", req.RequestedBy, "error", err.Error())
		return nil, errs.Wrap(err, "failed to enqueue export")
	}
	slog.Info("Export job enqueued", "job_id", res.Job.ID, "filename", filename)
	return &Enqueued{JobID: res.Job.ID, Filename: filename}, nil
}

func (c *Client) EnqueueMonthlyReport(ctx context.Context) (*Enqueued, error) {
	res, err := c.river.Insert(ctx, MonthlyReportArgs{Manual: true}, nil)
	if err != nil {
		slog.Error("failed to enqueue monthly report", "error", err.Error())
		return nil, errs.Wrap(err, "failed to enqueue monthly report")
	}
	return &Enqueued{JobID: res.Job.ID}, nil
}

func (c *Client) JobStatus(ctx context.Context, id int64) (*JobStatus, error) {
	row, err := c.river.JobGet(ctx, id)
	if err != nil {
		if errs.Is(err, rivertype.ErrNotFound) {
			return nil, errs.Mark(err, ErrJobNotFound)
		}
		return nil, errs.Wrapf(err, "failed to get job %d", id)
	}
	return StatusFromRow(row), nil
}

// StatusFromRow copies the requester out of export args; other kinds carry none.
func StatusFromRow(row *rivertype.JobRow) *JobStatus {
	status := &JobStatus{
		ID:          row.ID,
		Kind:        row.Kind,
		State:       string(row.State),
		Attempt:     row.Attempt,
		MaxAttempts: row.MaxAttempts,
		CreatedAt:   row.CreatedAt,
		FinalizedAt: row.FinalizedAt,
	}
	for _, e := range row.Errors {
		status.Errors = append(status.Errors, e.Error)
	}
	if row.Kind == (ExportArgs{}).Kind() {
		var args ExportArgs
		if err := json.Unmarshal(row.EncodedArgs, &args); err == nil {
			status.Filename = args.Filename
			if args.RequestedBy != uuid.Nil {
				requestedBy := args.RequestedBy
				status.RequestedBy = &requestedBy
			}
		}
	}
	return status
}
