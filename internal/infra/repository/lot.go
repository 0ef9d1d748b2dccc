package repository

import (
	"context"
	"time"

	"parking-core/internal/domain/lot"
	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LotWriteQueries interface {
	CreateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLotParams) (sqlc.ParkingLots, error)
	DeleteLot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetLotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	GetLotByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	GetLotWithCounts(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetLotWithCountsRow, error)
	SyncLotSpotCount(ctx context.Context, db sqlc.DBTX, arg sqlc.SyncLotSpotCountParams) (int32, error)
	UpdateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLotParams) (sqlc.ParkingLots, error)
}

type LotRepository struct {
	queries LotWriteQueries
}

func NewLotRepository(queries LotWriteQueries) *LotRepository {
	return &LotRepository{queries: queries}
}

func (r *LotRepository) Create(ctx context.Context, db sqlc.DBTX, l *lot.Lot) error {
	_, err := r.queries.CreateLot(ctx, db, sqlc.CreateLotParams{
		ID:            l.ID(),
		Name:          l.Name().Value(),
		Price:         pgconv.NumericFromDecimal(l.HourlyRate()),
		Address:       l.Address().Value(),
		PinCode:       l.PinCode().Value(),
		NumberOfSpots: int32(l.NumberOfSpots()), // #nosec G115 -- bounded by lot.MaxSpots
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create lot", err)
	}
	return nil
}

func (r *LotRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*lot.Lot, error) {
	row, err := r.queries.GetLotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return lotFromRow(row)
}

func (r *LotRepository) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*lot.Lot, error) {
	row, err := r.queries.GetLotByIDForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock lot", err)
	}
	return lotFromRow(row)
}

func (r *LotRepository) Update(ctx context.Context, db sqlc.DBTX, l *lot.Lot) error {
	_, err := r.queries.UpdateLot(ctx, db, sqlc.UpdateLotParams{
		ID:            l.ID(),
		Name:          l.Name().Value(),
		Price:         pgconv.NumericFromDecimal(l.HourlyRate()),
		Address:       l.Address().Value(),
		PinCode:       l.PinCode().Value(),
		NumberOfSpots: int32(l.NumberOfSpots()), // #nosec G115 -- bounded by lot.MaxSpots
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update lot", err)
	}
	return nil
}

func (r *LotRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteLot(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) OccupiedSpotCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	row, err := r.queries.GetLotWithCounts(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to count occupied spots", err)
	}
	return row.OccupiedSpots, nil
}

// SyncSpotCount recomputes number_of_spots from the spot rows.
func (r *LotRepository) SyncSpotCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) (int, error) {
	n, err := r.queries.SyncLotSpotCount(ctx, db, sqlc.SyncLotSpotCountParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to sync lot spot count", err)
	}
	return int(n), nil
}

func lotFromRow(row sqlc.ParkingLots) (*lot.Lot, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lot price", err)
	}
	attrs := lot.Attributes{}
	if attrs.Name, err = lot.NewName(row.Name); err != nil {
		return nil, infra.WrapRepoErr("invalid stored lot name", err)
	}
	if attrs.Price, err = lot.NewPrice(price); err != nil {
		return nil, infra.WrapRepoErr("invalid stored lot price", err)
	}
	if attrs.Address, err = lot.NewAddress(row.Address); err != nil {
		return nil, infra.WrapRepoErr("invalid stored lot address", err)
	}
	if attrs.PinCode, err = lot.NewPinCode(row.PinCode); err != nil {
		return nil, infra.WrapRepoErr("invalid stored lot pin code", err)
	}
	return lot.ReconstructLot(
		row.ID,
		attrs,
		int(row.NumberOfSpots),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
