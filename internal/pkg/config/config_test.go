//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAdminConfig(t *testing.T) {
	t.Run("reads credentials and defaults the name", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "root@example.com")
		t.Setenv("ADMIN_PASSWORD", "password123")

		cfg, err := LoadAdminConfig()

		require.NoError(t, err)
		assert.Equal(t, "root@example.com", cfg.Email)
		assert.Equal(t, "password123", cfg.Password)
		assert.Equal(t, "Administrator", cfg.FullName)
	})

	t.Run("password is required", func(t *testing.T) {
		t.Setenv("ADMIN_EMAIL", "root@example.com")
		t.Setenv("ADMIN_PASSWORD", "")
		require.NoError(t, os.Unsetenv("ADMIN_PASSWORD"))

		_, err := LoadAdminConfig()

		assert.ErrorContains(t, err, "ADMIN_PASSWORD")
	})
}

func TestJobsConfig_Durations(t *testing.T) {
	cfg := JobsConfig{RetentionDays: 30, ReminderIdleDays: 7}

	assert.Equal(t, 30*24*time.Hour, cfg.Retention())
	assert.Equal(t, 7*24*time.Hour, cfg.ReminderIdle())
}
