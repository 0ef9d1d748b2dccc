//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parking-core/internal/handler/httperr"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", commands.ErrInvalidVehicleNumber, http.StatusBadRequest},
		{"not found", commands.ErrSpotNotFound, http.StatusNotFound},
		{"conflict", errs.Wrap(commands.ErrSpotUnavailable, "claim"), http.StatusConflict},
		{"bad credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", commands.ErrNotOwner, http.StatusForbidden},
		{"inactive", commands.ErrUserInactive, http.StatusForbidden},
		{"internal sentinel", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func abort(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

	httperr.Abort(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestAbort(t *testing.T) {
	t.Run("uses the sentinel message", func(t *testing.T) {
		w, body := abort(t, errs.Mark(errors.New(`duplicate key value violates unique constraint "uq_reservations_active_spot"`), commands.ErrSpotUnavailable))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "spot is not available", body["error"].(map[string]any)["message"])
		assert.NotContains(t, w.Body.String(), "uq_reservations_active_spot")
	})

	t.Run("validation errors carry detail", func(t *testing.T) {
		w, body := abort(t, errs.Mark(errors.New("pin code must be 4-10 digits"), commands.ErrInvalidLot))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["detail"], "pin code")
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		w, body := abort(t, errors.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body["error"].(map[string]any)["message"])
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}
