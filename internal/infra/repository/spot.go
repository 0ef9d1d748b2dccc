package repository

import (
	"context"

	"parking-core/internal/domain/spot"
	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpotWriteQueries interface {
	ClaimSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSpots, error)
	CreateSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSpotsParams) ([]sqlc.ParkingSpots, error)
	DeleteSpotsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
	GetSpotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSpots, error)
	ListAvailableSpotsByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]sqlc.ParkingSpots, error)
	ListRemovableSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRemovableSpotsParams) ([]sqlc.ParkingSpots, error)
	ListSpotsByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]sqlc.ParkingSpots, error)
	LockSpotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSpots, error)
	LockSpotsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ParkingSpots, error)
	ReleaseSpot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SetSpotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSpotStatusParams) (sqlc.ParkingSpots, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
}

func NewSpotRepository(queries SpotWriteQueries) *SpotRepository {
	return &SpotRepository{queries: queries}
}

func (r *SpotRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.GetSpotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot by ID", err)
	}
	return spotFromRow(row), nil
}

func (r *SpotRepository) FindAvailable(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error) {
	rows, err := r.queries.ListAvailableSpotsByLot(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available spots", err)
	}
	return spotsFromRows(rows), nil
}

func (r *SpotRepository) ListByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error) {
	rows, err := r.queries.ListSpotsByLot(ctx, db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	return spotsFromRows(rows), nil
}

func (r *SpotRepository) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.LockSpotByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock spot", err)
	}
	return spotFromRow(row), nil
}

// Claim flips the spot to occupied with a single conditional update. When no row
// matches, a follow-up read tells a taken spot (CONFLICT) from a missing one.
func (r *SpotRepository) Claim(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error) {
	row, err := r.queries.ClaimSpot(ctx, db, id)
	if err == nil {
		return spotFromRow(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to claim spot", err)
	}

	if _, lookupErr := r.queries.GetSpotByID(ctx, db, id); lookupErr != nil {
		if pgconv.IsNoRows(lookupErr) {
			return nil, infra.WrapRepoErr("spot not found", lookupErr, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to look up spot", lookupErr)
	}
	return nil, infra.WrapRepoErr("spot already occupied", err, infra.KindConflict)
}

func (r *SpotRepository) Release(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.ReleaseSpot(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release spot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) SetStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status spot.Status) (*spot.Spot, error) {
	row, err := r.queries.SetSpotStatus(ctx, db, sqlc.SetSpotStatusParams{ID: id, Status: status.String()})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to set spot status", err)
	}
	return spotFromRow(row), nil
}

func (r *SpotRepository) AddSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, numbers []string) ([]*spot.Spot, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	rows, err := r.queries.CreateSpots(ctx, db, sqlc.CreateSpotsParams{LotID: lotID, SpotNumbers: numbers})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to add spots", err)
	}
	return spotsFromRows(rows), nil
}

// RemoveSpots locks every target first so a concurrent claim either finishes
// before the check or waits until the rows are gone.
func (r *SpotRepository) RemoveSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, ids []uuid.UUID) (int64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	rows, err := r.queries.LockSpotsByIDs(ctx, db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to lock spots", err)
	}
	if len(rows) != len(ids) {
		return 0, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	for _, row := range rows {
		if row.LotID != lotID {
			return 0, infra.WrapRepoErr("spot does not belong to lot", nil, infra.KindNotFound)
		}
		if row.Status == spot.StatusOccupied.String() {
			return 0, infra.WrapRepoErr("spot is occupied", nil, infra.KindConflict)
		}
	}

	deleted, err := r.queries.DeleteSpotsByIDs(ctx, db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete spots", err)
	}
	return deleted, nil
}

// RemovableSpots returns up to limit available spots with no active
// reservation, highest number first, locked for the caller's transaction.
func (r *SpotRepository) RemovableSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, limit int) ([]*spot.Spot, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queries.ListRemovableSpots(ctx, db, sqlc.ListRemovableSpotsParams{
		LotID: lotID,
		Limit: int32(limit), // #nosec G115 -- bounded by lot.MaxSpots
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list removable spots", err)
	}
	return spotsFromRows(rows), nil
}

func spotFromRow(row sqlc.ParkingSpots) *spot.Spot {
	return spot.ReconstructSpot(
		row.ID,
		row.LotID,
		row.SpotNumber,
		spot.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func spotsFromRows(rows []sqlc.ParkingSpots) []*spot.Spot {
	out := make([]*spot.Spot, len(rows))
	for i, row := range rows {
		out[i] = spotFromRow(row)
	}
	return out
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
