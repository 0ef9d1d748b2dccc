package commands

import (
	"context"
	"log/slog"

	"parking-core/internal/domain/billing"
	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/reservation"
	"parking-core/internal/domain/spot"
	"parking-core/internal/infra"
	"parking-core/internal/infra/cache"
	"parking-core/internal/infra/metrics"
	"parking-core/internal/infra/repository"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

type ReserveInput struct {
	UserID        uuid.UUID
	LotID         uuid.UUID
	SpotID        uuid.UUID
	VehicleNumber string
}

type ReserveResult struct {
	Reservation *reservation.Reservation
	Spot        *spot.Spot
	Lot         *lot.Lot
}

type ReleaseResult struct {
	Reservation   *reservation.Reservation
	DurationHours decimal.Decimal
	Cost          decimal.Decimal
}

// OverrideResult reports what an administrative status change did. Cancelled is
// set when forcing a spot available ended its active reservation; AdminHold is
// set when a free spot was taken out of service.
type OverrideResult struct {
	Spot      *spot.Spot
	Cancelled *reservation.Reservation
	AdminHold bool
}

type AllocationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	ParkIn(ctx context.Context, reservationID, actorID uuid.UUID) (*reservation.Reservation, error)
	Release(ctx context.Context, reservationID uuid.UUID, actor Actor) (*ReleaseResult, error)
	ReleaseActive(ctx context.Context, userID uuid.UUID) (*ReleaseResult, error)
	AdminCancel(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error)
	OverrideStatus(ctx context.Context, spotID uuid.UUID, status string) (*OverrideResult, error)
}

type allocationCommandsImpl struct {
	uow   shared.UnitOfWork
	calc  billing.Calculator
	cache cache.Cache
	clock clock.Clock
}

func NewAllocationCommands(
	uow shared.UnitOfWork,
	calc billing.Calculator,
	c cache.Cache,
	clk clock.Clock,
) AllocationCommands {
	return &allocationCommandsImpl{uow: uow, calc: calc, cache: c, clock: clk}
}

func (a *allocationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (_ *ReserveResult, err error) {
	defer observe("reserve", &err)

	vehicle, err := reservation.NewVehicleNumber(in.VehicleNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVehicleNumber)
	}

	var result *ReserveResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByID(ctx, tx.DB(), in.LotID)
		if err != nil {
			return translate(err, ErrLotNotFound, nil)
		}

		active, err := tx.Reservations().ActiveForUser(ctx, tx.DB(), in.UserID)
		if err != nil {
			return translate(err, nil, nil)
		}
		if active != nil {
			return ErrUserHasActiveReservation
		}

		claimed, err := tx.Spots().Claim(ctx, tx.DB(), in.SpotID)
		if err != nil {
			return translate(err, ErrSpotNotFound, ErrSpotUnavailable)
		}
		// Rolling back undoes the claim.
		if claimed.LotID() != l.ID() {
			return errs.Wrap(ErrSpotNotFound, "spot belongs to another lot")
		}

		// Tokens outlive deactivation, so the account state is read here.
		u, err := tx.Users().FindByID(ctx, tx.DB(), in.UserID)
		if err != nil {
			return translate(err, ErrUserNotFound, nil)
		}
		if !u.IsActive() {
			return ErrUserInactive
		}

		r := reservation.NewReservation(claimed.ID(), in.UserID, vehicle, a.clock.Now())
		if err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
			return createErr(err)
		}

		result = &ReserveResult{Reservation: r, Spot: claimed, Lot: l}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Spot reserved",
		"reservation_id", result.Reservation.ID(),
		"spot_id", result.Spot.ID(),
		"user_id", in.UserID,
	)
	a.invalidate(ctx)
	return result, nil
}

func (a *allocationCommandsImpl) ParkIn(ctx context.Context, reservationID, actorID uuid.UUID) (_ *reservation.Reservation, err error) {
	defer observe("park_in", &err)

	var parked *reservation.Reservation
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().LockByID(ctx, tx.DB(), reservationID)
		if err != nil {
			return translate(err, ErrReservationNotFound, nil)
		}
		if !r.IsOwnedBy(actorID) {
			return ErrNotOwner
		}
		if err := r.ParkIn(a.clock.Now()); err != nil {
			return transitionErr(err)
		}
		if err := tx.Reservations().MarkParkedIn(ctx, tx.DB(), r.ID(), *r.ParkedInAt()); err != nil {
			return transitionErr(err)
		}
		parked = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parked, nil
}

func (a *allocationCommandsImpl) Release(ctx context.Context, reservationID uuid.UUID, actor Actor) (_ *ReleaseResult, err error) {
	defer observe("release", &err)

	var result *ReleaseResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().LockByID(ctx, tx.DB(), reservationID)
		if err != nil {
			return translate(err, ErrReservationNotFound, nil)
		}
		if !actor.IsAdmin && !r.IsOwnedBy(actor.ID) {
			return ErrNotOwner
		}
		result, err = a.release(ctx, tx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	a.released(ctx, result)
	return result, nil
}

func (a *allocationCommandsImpl) ReleaseActive(ctx context.Context, userID uuid.UUID) (_ *ReleaseResult, err error) {
	defer observe("release", &err)

	var result *ReleaseResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Reservations().ActiveForUser(ctx, tx.DB(), userID)
		if err != nil {
			return translate(err, nil, nil)
		}
		if active == nil {
			return errs.Wrap(ErrReservationNotFound, "no active reservation")
		}
		r, err := tx.Reservations().LockByID(ctx, tx.DB(), active.ID())
		if err != nil {
			return translate(err, ErrReservationNotFound, nil)
		}
		result, err = a.release(ctx, tx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	a.released(ctx, result)
	return result, nil
}

// release completes r and frees its spot. The ledger is updated before the
// registry so a failure between the two leaves nothing half done after rollback.
func (a *allocationCommandsImpl) release(ctx context.Context, tx shared.Tx, r *reservation.Reservation) (*ReleaseResult, error) {
	if r.Status().IsTerminal() {
		return nil, ErrAlreadyReleased
	}

	s, err := tx.Spots().FindByID(ctx, tx.DB(), r.SpotID())
	if err != nil {
		return nil, translate(err, ErrSpotNotFound, nil)
	}
	l, err := tx.Lots().FindByID(ctx, tx.DB(), s.LotID())
	if err != nil {
		return nil, translate(err, ErrLotNotFound, nil)
	}

	start := r.BillingStart()
	now := a.clock.Now()
	cost := a.calc.Cost(start, now, l.HourlyRate())
	if err := r.Complete(now, cost); err != nil {
		return nil, transitionErr(err)
	}
	if err := tx.Reservations().Complete(ctx, tx.DB(), r.ID(), *r.ReleasedAt(), cost); err != nil {
		return nil, transitionErr(err)
	}
	if err := tx.Spots().Release(ctx, tx.DB(), r.SpotID()); err != nil {
		return nil, translate(err, ErrSpotNotFound, nil)
	}

	return &ReleaseResult{
		Reservation:   r,
		DurationHours: billing.DurationHours(start, *r.ReleasedAt()),
		Cost:          cost,
	}, nil
}

func (a *allocationCommandsImpl) released(ctx context.Context, result *ReleaseResult) {
	metrics.BilledAmountTotal.Add(result.Cost.InexactFloat64())
	slog.Info("Reservation released",
		"reservation_id", result.Reservation.ID(),
		"duration_hours", result.DurationHours.String(),
		"cost", result.Cost.StringFixed(2),
	)
	a.invalidate(ctx)
}

func (a *allocationCommandsImpl) AdminCancel(ctx context.Context, reservationID uuid.UUID) (_ *reservation.Reservation, err error) {
	defer observe("admin_cancel", &err)

	var cancelled *reservation.Reservation
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().LockByID(ctx, tx.DB(), reservationID)
		if err != nil {
			return translate(err, ErrReservationNotFound, nil)
		}
		if err := a.cancel(ctx, tx, r); err != nil {
			return err
		}
		cancelled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Reservation cancelled by admin", "reservation_id", reservationID)
	a.invalidate(ctx)
	return cancelled, nil
}

func (a *allocationCommandsImpl) cancel(ctx context.Context, tx shared.Tx, r *reservation.Reservation) error {
	if err := r.Cancel(a.clock.Now()); err != nil {
		return transitionErr(err)
	}
	if err := tx.Reservations().Cancel(ctx, tx.DB(), r.ID(), *r.ReleasedAt()); err != nil {
		return transitionErr(err)
	}
	if err := tx.Spots().Release(ctx, tx.DB(), r.SpotID()); err != nil {
		return translate(err, ErrSpotNotFound, nil)
	}
	return nil
}

func (a *allocationCommandsImpl) OverrideStatus(ctx context.Context, spotID uuid.UUID, status string) (_ *OverrideResult, err error) {
	defer observe("override", &err)

	target, err := spot.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSpotStatus)
	}

	var result *OverrideResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().LockByID(ctx, tx.DB(), spotID)
		if err != nil {
			return translate(err, ErrSpotNotFound, nil)
		}
		active, err := tx.Reservations().ActiveForSpot(ctx, tx.DB(), spotID)
		if err != nil {
			return translate(err, nil, nil)
		}

		out := &OverrideResult{}
		switch target {
		case spot.StatusOccupied:
			if active != nil {
				return ErrHasActiveReservation
			}
			out.AdminHold = s.IsAvailable()
		case spot.StatusAvailable:
			if active != nil {
				r, err := tx.Reservations().LockByID(ctx, tx.DB(), active.ID())
				if err != nil {
					return translate(err, ErrReservationNotFound, nil)
				}
				if err := a.cancel(ctx, tx, r); err != nil {
					return err
				}
				out.Cancelled = r
			}
		}

		if out.Spot, err = tx.Spots().SetStatus(ctx, tx.DB(), spotID, target); err != nil {
			return translate(err, ErrSpotNotFound, nil)
		}
		result = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{"spot_id", spotID, "status", target.String(), "admin_hold", result.AdminHold}
	if result.Cancelled != nil {
		attrs = append(attrs, "cancelled_reservation_id", result.Cancelled.ID())
	}
	slog.Info("Spot status overridden", attrs...)
	a.invalidate(ctx)
	return result, nil
}

func (a *allocationCommandsImpl) invalidate(ctx context.Context) {
	invalidateStats(ctx, a.cache)
}

// createErr reads the violated partial unique index to tell which side of the
// pair already had an active reservation.
func createErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == repository.ConstraintActiveSpot:
		return errs.Mark(err, ErrSpotUnavailable)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrUserHasActiveReservation)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrUserNotFound)
	}
	return translate(err, nil, nil)
}

// transitionErr maps domain and storage-level transition failures.
func transitionErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrAlreadyReleased):
		return errs.Mark(err, ErrAlreadyReleased)
	case errs.Is(err, reservation.ErrAlreadyParkedIn):
		return errs.Mark(err, ErrAlreadyParkedIn)
	}
	return translate(err, ErrReservationNotFound, nil)
}

func invalidateStats(ctx context.Context, c cache.Cache) {
	if err := c.Invalidate(ctx, cache.StatsKeys...); err != nil {
		slog.Warn("Stats cache invalidation failed", "error", err)
	}
}

func observe(operation string, err *error) {
	metrics.AllocationsTotal.WithLabelValues(operation, metrics.Outcome(*err)).Inc()
}
