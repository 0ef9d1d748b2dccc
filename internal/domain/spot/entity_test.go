//go:build unit

package spot_test

import (
	"testing"
	"time"

	"parking-core/internal/domain/spot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpot(t *testing.T) {
	lotID := uuid.New()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	s := spot.NewSpot(lotID, "Central-001", now)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, lotID, s.LotID())
	assert.Equal(t, "Central-001", s.Number())
	assert.Equal(t, spot.StatusAvailable, s.Status())
	assert.True(t, s.IsAvailable())
	assert.Equal(t, now, s.CreatedAt())
}

func TestNumbers(t *testing.T) {
	t.Run("新規ロット", func(t *testing.T) {
		got := spot.Numbers("Central", 0, 3)
		want := []string{"Central-001", "Central-002", "Central-003"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("numbers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("既存スポットからの追加", func(t *testing.T) {
		got := spot.Numbers("East", 9, 2)
		want := []string{"East-010", "East-011"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("numbers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("0件", func(t *testing.T) {
		assert.Empty(t, spot.Numbers("East", 5, 0))
	})

	t.Run("3桁を超える番号", func(t *testing.T) {
		assert.Equal(t, "West-1000", spot.Number("West", 1000))
	})
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"available", "occupied"} {
		status, err := spot.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := spot.NewStatus("reserved")
	require.ErrorIs(t, err, spot.ErrInvalidStatus)
}

func TestNextNumbers(t *testing.T) {
	t.Run("欠番を先に埋める", func(t *testing.T) {
		taken := []string{"Central-001", "Central-003"}
		got := spot.NextNumbers("Central", taken, 3)
		want := []string{"Central-002", "Central-004", "Central-005"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("numbers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("改名後のロットは旧名と衝突しない", func(t *testing.T) {
		taken := []string{"Old-001", "Old-002"}
		got := spot.NextNumbers("New", taken, 1)
		assert.Equal(t, []string{"New-001"}, got)
	})

	t.Run("0件", func(t *testing.T) {
		assert.Nil(t, spot.NextNumbers("East", nil, 0))
	})
}
