//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"parking-core/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopCache(t *testing.T) {
	c := cache.NewNopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, cache.KeyAdminStats, []byte(`{}`), time.Minute))
	b, ok, err := c.Get(ctx, cache.KeyAdminStats)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
	assert.NoError(t, c.Invalidate(ctx, cache.StatsKeys...))
	assert.NoError(t, c.Close())
}
