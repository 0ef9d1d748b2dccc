//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parking-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	vn, err := reservation.NewVehicleNumber("ka-01 ab 1234")
	require.NoError(t, err)
	return reservation.NewReservation(uuid.New(), uuid.New(), vn, t0)
}

func TestNewReservation(t *testing.T) {
	r := newReservation(t)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, reservation.StatusActive, r.Status())
	assert.Equal(t, reservation.PhaseReserved, r.Phase())
	assert.Equal(t, "KA-01 AB 1234", r.VehicleNumber().Value())
	assert.Equal(t, t0, r.ReservedAt())
	assert.Equal(t, t0, r.BillingStart())
	assert.Nil(t, r.ParkedInAt())
	assert.Nil(t, r.ReleasedAt())
	assert.Nil(t, r.Cost())
}

func TestReservation_Transitions(t *testing.T) {
	t.Run("予約→入庫→完了", func(t *testing.T) {
		r := newReservation(t)

		require.NoError(t, r.ParkIn(t0.Add(10*time.Minute)))
		assert.Equal(t, reservation.PhaseParked, r.Phase())
		assert.Equal(t, t0.Add(10*time.Minute), r.BillingStart())

		require.NoError(t, r.Complete(t0.Add(100*time.Minute), decimal.RequireFromString("60.00")))
		assert.Equal(t, reservation.PhaseCompleted, r.Phase())
		require.NotNil(t, r.ReleasedAt())
		assert.Equal(t, t0.Add(100*time.Minute), *r.ReleasedAt())
		assert.Equal(t, "60.00", r.Cost().StringFixed(2))
	})

	t.Run("入庫なしで完了", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.Complete(t0.Add(time.Hour), decimal.NewFromInt(40)))
		assert.Equal(t, reservation.PhaseCompleted, r.Phase())
		assert.Nil(t, r.ParkedInAt())
	})

	t.Run("二重入庫NG", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.ParkIn(t0.Add(time.Minute)))
		require.ErrorIs(t, r.ParkIn(t0.Add(2*time.Minute)), reservation.ErrAlreadyParkedIn)
		assert.Equal(t, t0.Add(time.Minute), *r.ParkedInAt())
	})

	t.Run("完了後の入庫NG", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.Complete(t0.Add(time.Hour), decimal.Zero))
		require.ErrorIs(t, r.ParkIn(t0.Add(2*time.Hour)), reservation.ErrAlreadyReleased)
	})

	t.Run("二重完了NG 費用と解放時刻は不変", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.Complete(t0.Add(time.Hour), decimal.NewFromInt(40)))

		require.ErrorIs(t, r.Complete(t0.Add(3*time.Hour), decimal.NewFromInt(120)), reservation.ErrAlreadyReleased)
		assert.Equal(t, "40.00", r.Cost().StringFixed(2))
		assert.Equal(t, t0.Add(time.Hour), *r.ReleasedAt())
	})

	t.Run("キャンセルは費用0", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.Cancel(t0.Add(time.Hour)))
		assert.Equal(t, reservation.PhaseCancelled, r.Phase())
		assert.True(t, r.Cost().IsZero())
		require.ErrorIs(t, r.Cancel(t0.Add(2*time.Hour)), reservation.ErrAlreadyReleased)
		require.ErrorIs(t, r.Complete(t0.Add(2*time.Hour), decimal.Zero), reservation.ErrAlreadyReleased)
	})

	t.Run("時刻の巻き戻りは開始時刻に丸める", func(t *testing.T) {
		r := newReservation(t)
		require.NoError(t, r.ParkIn(t0.Add(-time.Minute)))
		assert.Equal(t, t0, *r.ParkedInAt())

		require.NoError(t, r.Complete(t0.Add(-time.Hour), decimal.Zero))
		assert.Equal(t, t0, *r.ReleasedAt())
	})
}

func TestReservation_EstimatedCost(t *testing.T) {
	r := newReservation(t)
	require.NoError(t, r.ParkIn(t0))

	assert.Equal(t, "60.00", r.EstimatedCost(t0.Add(90*time.Minute), decimal.NewFromInt(40)).StringFixed(2))

	require.NoError(t, r.Complete(t0.Add(30*time.Minute), decimal.RequireFromString("20.00")))
	assert.Equal(t, "20.00", r.EstimatedCost(t0.Add(5*time.Hour), decimal.NewFromInt(40)).StringFixed(2))
}

func TestPhaseOf(t *testing.T) {
	assert.Equal(t, reservation.PhaseFree, reservation.PhaseOf(nil))
	assert.Equal(t, reservation.PhaseReserved, reservation.PhaseOf(newReservation(t)))
}

func TestNewVehicleNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "大文字化", input: "mh12 de 1433", want: "MH12 DE 1433"},
		{name: "ハイフン可", input: "AB-12", want: "AB-12"},
		{name: "前後の空白除去", input: "  xy99  ", want: "XY99"},
		{name: "最短2文字", input: "ab", want: "AB"},
		{name: "1文字NG", input: "a", errIs: reservation.ErrInvalidVehicleNumber},
		{name: "21文字NG", input: "ABCDEFGHIJKLMNOPQRSTU", errIs: reservation.ErrInvalidVehicleNumber},
		{name: "記号NG", input: "AB_12", errIs: reservation.ErrInvalidVehicleNumber},
		{name: "空NG", input: "   ", errIs: reservation.ErrInvalidVehicleNumber},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vn, err := reservation.NewVehicleNumber(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, vn.Value())
		})
	}
}
