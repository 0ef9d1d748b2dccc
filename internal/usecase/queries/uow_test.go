//go:build unit

package queries_test

import (
	"context"

	sqlc "parking-core/internal/infra/sqlc/generated"
	sharedmock "parking-core/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// passthroughUoW runs every read callback immediately with a nil DBTX.
func passthroughUoW(ctrl *gomock.Controller) *sharedmock.MockUnitOfWork {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	run := func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
		return fn(ctx, nil)
	}
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return uow
}
