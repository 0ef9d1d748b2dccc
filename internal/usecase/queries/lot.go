package queries

import (
	"context"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotQueries interface {
	ListLots(ctx context.Context) ([]*LotView, error)
	GetLot(ctx context.Context, id uuid.UUID) (*LotView, error)
	AvailableSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
}

type LotReadStore interface {
	List(ctx context.Context, db sqlc.DBTX) ([]*LotView, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*LotView, error)
	AvailableSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*SpotView, error)
}

type lotQueriesImpl struct {
	store LotReadStore
	uow   shared.UnitOfWork
}

func NewLotQueries(store LotReadStore, uow shared.UnitOfWork) LotQueries {
	return &lotQueriesImpl{store: store, uow: uow}
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	var lots []*LotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		lots, err = q.store.List(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lots, nil
}

func (q *lotQueriesImpl) GetLot(ctx context.Context, id uuid.UUID) (*LotView, error) {
	var lot *LotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		lot, err = q.store.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLotNotFound
		}
		return nil, err
	}
	return lot, nil
}

// AvailableSpots checks the lot first so an unknown lot is not reported as full.
func (q *lotQueriesImpl) AvailableSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error) {
	var spots []*SpotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.store.FindByID(ctx, db, lotID); err != nil {
			return err
		}
		var err error
		spots, err = q.store.AvailableSpots(ctx, db, lotID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLotNotFound
		}
		return nil, err
	}
	return spots, nil
}
