//go:build unit

package request_test

import (
	"testing"
	"time"

	"parking-core/internal/handler/dto/request"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQuery_ToFilter(t *testing.T) {
	lotID := uuid.New()

	t.Run("parses every field and makes date_to inclusive", func(t *testing.T) {
		q := request.BookingQuery{
			LotID:    lotID.String(),
			Status:   " active ",
			DateFrom: "2025-03-01",
			DateTo:   "2025-03-01",
			Page:     2,
		}

		f, err := q.ToFilter()

		require.NoError(t, err)
		require.NotNil(t, f.LotID)
		assert.Equal(t, lotID, *f.LotID)
		assert.Nil(t, f.UserID)
		assert.Nil(t, f.SpotID)
		require.NotNil(t, f.Status)
		assert.Equal(t, "active", *f.Status)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
		assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), *f.DateTo)
		assert.Equal(t, 2, f.Page)
	})

	t.Run("empty query", func(t *testing.T) {
		f, err := (&request.BookingQuery{}).ToFilter()

		require.NoError(t, err)
		assert.Equal(t, queries.BookingFilter{}, f)
	})

	tests := []struct {
		name  string
		query request.BookingQuery
		field string
	}{
		{"bad lot id", request.BookingQuery{LotID: "lot-1"}, "lot_id"},
		{"bad user id", request.BookingQuery{UserID: "42"}, "user_id"},
		{"bad spot id", request.BookingQuery{SpotID: "x"}, "spot_id"},
		{"bad date_from", request.BookingQuery{DateFrom: "03/01/2025"}, "date_from"},
		{"bad date_to", request.BookingQuery{DateTo: "2025-13-01"}, "date_to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query.ToFilter()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestHistoryQuery_ToFilter(t *testing.T) {
	f := (&request.HistoryQuery{Status: "", Sort: "cost", Page: 3}).ToFilter()

	assert.Nil(t, f.Status)
	assert.Equal(t, queries.SortByCost, f.Sort)
	assert.Equal(t, 3, f.Page)
}

func TestReserveRequest_ToInput(t *testing.T) {
	userID, lotID, spotID := uuid.New(), uuid.New(), uuid.New()
	r := request.ReserveRequest{SpotID: spotID, VehicleNumber: "  KA01AB1234 "}

	in := r.ToInput(userID, lotID)

	assert.Equal(t, userID, in.UserID)
	assert.Equal(t, lotID, in.LotID)
	assert.Equal(t, spotID, in.SpotID)
	assert.Equal(t, "KA01AB1234", in.VehicleNumber)
}
