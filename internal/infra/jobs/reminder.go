package jobs

import (
	"context"
	"log/slog"
	"time"

	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

const reminderMarkerTTL = 48 * time.Hour

type ReminderArgs struct{}

func (ReminderArgs) Kind() string { return "inactive_user_reminder" }

// ReminderWorker flags regular accounts that have not reserved anything within
// the idle window. A user is reminded at most once per UTC day; the marker
// lives in the cache, so a cache outage can repeat a reminder.
type ReminderWorker struct {
	river.WorkerDefaults[ReminderArgs]
	users queries.UserQueries
	cache cache.Cache
	clock clock.Clock
	idle  time.Duration
}

func NewReminderWorker(users queries.UserQueries, c cache.Cache, clk clock.Clock, idle time.Duration) *ReminderWorker {
	return &ReminderWorker{users: users, cache: c, clock: clk, idle: idle}
}

func (w *ReminderWorker) Work(ctx context.Context, job *river.Job[ReminderArgs]) (err error) {
	defer observe(job.Kind, &err)
	_, err = w.Run(ctx)
	return err
}

// Run returns the users reminded in this pass.
func (w *ReminderWorker) Run(ctx context.Context) ([]uuid.UUID, error) {
	now := w.clock.Now()
	idle, err := w.users.InactiveSince(ctx, now.Add(-w.idle))
	if err != nil {
		return nil, err
	}

	var reminded []uuid.UUID
	for _, u := range idle {
		key := ReminderKey(u.ID, now)
		if _, seen, err := w.cache.Get(ctx, key); err == nil && seen {
			continue
		}
		if err := w.cache.Set(ctx, key, []byte(now.UTC().Format(time.RFC3339)), reminderMarkerTTL); err != nil {
			slog.Warn("failed to store reminder marker", "user_id", u.ID, "error", err.Error())
		}
		slog.Info("Inactive user reminder", "user_id", u.ID, "email", u.Email, "last_login_at", u.LastLoginAt)
		reminded = append(reminded, u.ID)
	}

	slog.Info("Reminder pass finished", "idle", len(idle), "reminded", len(reminded))
	return reminded, nil
}

func ReminderKey(userID uuid.UUID, at time.Time) string {
	return cache.KeyReminderPrefix + ":" + userID.String() + ":" + at.UTC().Format("2006-01-02")
}
