package readstore

import (
	"context"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type LotReadQueries interface {
	ListLotsWithCounts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLotsWithCountsRow, error)
	GetLotWithCounts(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetLotWithCountsRow, error)
	ListAvailableSpotsByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]sqlc.ParkingSpots, error)
}

type LotReadStore struct {
	queries LotReadQueries
}

func NewLotReadStore(queries LotReadQueries) *LotReadStore {
	return &LotReadStore{queries: queries}
}

func (r *LotReadStore) List(ctx context.Context, db sqlc.DBTX) ([]*queries.LotView, error) {
	rows, err := r.queries.ListLotsWithCounts(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	views := make([]*queries.LotView, 0, len(rows))
	for _, row := range rows {
		v, err := toLotView(sqlc.GetLotWithCountsRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *LotReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.LotView, error) {
	row, err := r.queries.GetLotWithCounts(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get lot", err)
	}
	return toLotView(row)
}

func (r *LotReadStore) AvailableSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListAvailableSpotsByLot(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available spots", err)
	}
	views := make([]*queries.SpotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.SpotView{
			ID:         row.ID,
			LotID:      row.LotID,
			SpotNumber: row.SpotNumber,
			Status:     row.Status,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func toLotView(row sqlc.GetLotWithCountsRow) (*queries.LotView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lot price", err)
	}
	return &queries.LotView{
		ID:             row.ID,
		Name:           row.Name,
		Price:          price,
		Address:        row.Address,
		PinCode:        row.PinCode,
		NumberOfSpots:  int(row.NumberOfSpots),
		AvailableSpots: row.AvailableSpots,
		OccupiedSpots:  row.OccupiedSpots,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
