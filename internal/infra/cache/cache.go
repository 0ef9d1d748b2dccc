package cache

import (
	"context"
	"time"
)

const (
	KeyAdminStats     = "admin_stats"
	KeyAdminAnalytics = "admin_analytics"

	// KeyReminderPrefix is followed by ":<user id>:<yyyy-mm-dd>".
	KeyReminderPrefix = "inactive_reminder"
)

// StatsKeys are dropped after every committed write.
var StatsKeys = []string{KeyAdminStats, KeyAdminAnalytics}

// Cache stores opaque values. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	Close() error
}
