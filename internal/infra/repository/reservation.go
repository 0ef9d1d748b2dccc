package repository

import (
	"context"
	"time"

	"parking-core/internal/domain/reservation"
	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Names of the partial unique indexes guarding active reservations.
const (
	ConstraintActiveUser = "uq_reservations_active_user"
	ConstraintActiveSpot = "uq_reservations_active_spot"
)

type ReservationWriteQueries interface {
	CancelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelReservationParams) (int64, error)
	CompleteReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteReservationParams) (int64, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	DeleteTerminalReservationsBefore(ctx context.Context, db sqlc.DBTX, cutoff pgtype.Timestamptz) (int64, error)
	GetActiveReservationBySpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (sqlc.Reservations, error)
	GetActiveReservationByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Reservations, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	MarkReservationParkedIn(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationParkedInParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) ActiveForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetActiveReservationByUser(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active reservation for user", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) ActiveForSpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetActiveReservationBySpot(ctx, db, spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active reservation for spot", err)
	}
	return reservationFromRow(row)
}

// Create inserts an active reservation. A violated partial unique index comes
// back as DUPLICATE_KEY with the index name attached.
func (r *ReservationRepository) Create(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error {
	err := r.queries.CreateReservation(ctx, db, sqlc.CreateReservationParams{
		ID:            res.ID(),
		SpotID:        res.SpotID(),
		UserID:        res.UserID(),
		VehicleNumber: res.VehicleNumber().Value(),
		ReservedAt:    pgconv.TimeToPgtype(res.ReservedAt()),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) MarkParkedIn(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error {
	affected, err := r.queries.MarkReservationParkedIn(ctx, db, sqlc.MarkReservationParkedInParams{
		ID:         id,
		ParkedInAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation parked in", err)
	}
	if affected == 0 {
		return r.explainNoop(ctx, db, id)
	}
	return nil
}

func (r *ReservationRepository) Complete(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time, cost decimal.Decimal) error {
	affected, err := r.queries.CompleteReservation(ctx, db, sqlc.CompleteReservationParams{
		ID:         id,
		ReleasedAt: pgconv.TimeToPgtype(at),
		Cost:       pgconv.NumericFromDecimal(cost),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete reservation", err)
	}
	if affected == 0 {
		return r.explainNoop(ctx, db, id)
	}
	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error {
	affected, err := r.queries.CancelReservation(ctx, db, sqlc.CancelReservationParams{
		ID:         id,
		ReleasedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if affected == 0 {
		return r.explainNoop(ctx, db, id)
	}
	return nil
}

func (r *ReservationRepository) DeleteTerminalBefore(ctx context.Context, db sqlc.DBTX, cutoff time.Time) (int64, error) {
	deleted, err := r.queries.DeleteTerminalReservationsBefore(ctx, db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete terminal reservations", err)
	}
	return deleted, nil
}

// explainNoop turns a conditional update that matched nothing into NOT_FOUND or
// a CONFLICT carrying the domain reason.
func (r *ReservationRepository) explainNoop(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	row, err := r.queries.GetReservationByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to look up reservation", err)
	}
	if reservation.Status(row.Status).IsTerminal() {
		return infra.WrapRepoErr("reservation already released", reservation.ErrAlreadyReleased, infra.KindConflict)
	}
	if row.ParkedInAt.Valid {
		return infra.WrapRepoErr("reservation already parked in", reservation.ErrAlreadyParkedIn, infra.KindConflict)
	}
	return infra.WrapRepoErr("reservation changed concurrently", errs.New("conditional update matched no rows"), infra.KindConflict)
}

func reservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation cost", err)
	}
	vehicle, err := reservation.NewVehicleNumber(row.VehicleNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored vehicle number", err)
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.SpotID,
		row.UserID,
		vehicle,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.ReservedAt),
		pgconv.TimePtrFromPgtype(row.ParkedInAt),
		pgconv.TimePtrFromPgtype(row.ReleasedAt),
		cost,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
