//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parking-core/internal/infra"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/queries"
	queriesmock "parking-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		repoErr error
		wantErr error
	}{
		{
			name: "active user",
			view: &queries.AuthorizedUserView{ID: userID, Email: "a@example.com", Role: "user", IsActive: true},
		},
		{
			name:    "inactive user",
			view:    &queries.AuthorizedUserView{ID: userID, IsActive: false},
			wantErr: queries.ErrUserInactive,
		},
		{
			name:    "missing user",
			repoErr: infra.WrapRepoErr("user not found", nil, infra.KindNotFound),
			wantErr: queries.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).Return(tt.view, tt.repoErr)

			got, err := queries.NewUserQueries(store, passthroughUoW(ctrl)).GetCurrentUser(context.Background(), userID)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}

func TestUserQueries_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	users := []*queries.UserView{{ID: uuid.New()}, {ID: uuid.New()}}
	store.EXPECT().List(gomock.Any(), gomock.Any(), int32(20), int32(20)).Return(users, nil)
	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(22), nil)

	page, err := queries.NewUserQueries(store, passthroughUoW(ctrl)).ListUsers(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PerPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

func TestUserQueries_InactiveSince(t *testing.T) {
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns idle accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		idle := []*queries.UserView{{ID: uuid.New(), Email: "idle@example.com"}}
		store.EXPECT().Idle(gomock.Any(), gomock.Any(), since).Return(idle, nil)

		got, err := queries.NewUserQueries(store, passthroughUoW(ctrl)).InactiveSince(context.Background(), since)

		require.NoError(t, err)
		assert.Equal(t, idle, got)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		store.EXPECT().Idle(gomock.Any(), gomock.Any(), since).Return(nil, assert.AnError)

		got, err := queries.NewUserQueries(store, passthroughUoW(ctrl)).InactiveSince(context.Background(), since)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLotQueries_AvailableSpots(t *testing.T) {
	lotID := uuid.New()

	t.Run("unknown lot is not reported as full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLotReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), lotID).Return(nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound))

		_, err := queries.NewLotQueries(store, passthroughUoW(ctrl)).AvailableSpots(context.Background(), lotID)

		assert.True(t, errs.Is(err, queries.ErrLotNotFound))
	})

	t.Run("lists free spots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLotReadStore(ctrl)
		spots := []*queries.SpotView{{ID: uuid.New(), LotID: lotID, SpotNumber: "Central-002", Status: "available"}}
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), lotID).Return(&queries.LotView{ID: lotID}, nil)
		store.EXPECT().AvailableSpots(gomock.Any(), gomock.Any(), lotID).Return(spots, nil)

		got, err := queries.NewLotQueries(store, passthroughUoW(ctrl)).AvailableSpots(context.Background(), lotID)

		require.NoError(t, err)
		assert.Equal(t, spots, got)
	})
}

func TestLotQueries_GetLot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockLotReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound))

	_, err := queries.NewLotQueries(store, passthroughUoW(ctrl)).GetLot(context.Background(), uuid.New())

	assert.True(t, errs.Is(err, queries.ErrLotNotFound))
}
