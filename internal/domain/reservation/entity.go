package reservation

import (
	"errors"
	"time"

	"parking-core/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyParkedIn = errors.New("vehicle is already parked in")
	ErrAlreadyReleased = errors.New("reservation is already released")
	ErrInvalidStatus   = errors.New("invalid reservation status")
)

type Reservation struct {
	id            uuid.UUID
	spotID        uuid.UUID
	userID        uuid.UUID
	vehicleNumber VehicleNumber
	status        Status
	reservedAt    time.Time
	parkedInAt    *time.Time
	releasedAt    *time.Time
	cost          *decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation starts a reservation in the Reserved phase. The spot must already
// have been claimed in the same transaction.
func NewReservation(spotID, userID uuid.UUID, vehicle VehicleNumber, at time.Time) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		spotID:        spotID,
		userID:        userID,
		vehicleNumber: vehicle,
		status:        StatusActive,
		reservedAt:    at,
		createdAt:     at,
		updatedAt:     at,
	}
}

func ReconstructReservation(
	id, spotID, userID uuid.UUID,
	vehicle VehicleNumber,
	status Status,
	reservedAt time.Time,
	parkedInAt, releasedAt *time.Time,
	cost *decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		spotID:        spotID,
		userID:        userID,
		vehicleNumber: vehicle,
		status:        status,
		reservedAt:    reservedAt,
		parkedInAt:    parkedInAt,
		releasedAt:    releasedAt,
		cost:          cost,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) Phase() Phase {
	switch r.status {
	case StatusCompleted:
		return PhaseCompleted
	case StatusCancelled:
		return PhaseCancelled
	}
	if r.parkedInAt != nil {
		return PhaseParked
	}
	return PhaseReserved
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// BillingStart is parked_in_at when the vehicle arrived, reserved_at otherwise.
func (r *Reservation) BillingStart() time.Time {
	if r.parkedInAt != nil {
		return *r.parkedInAt
	}
	return r.reservedAt
}

// EstimatedCost prices the session as if it were released at now.
func (r *Reservation) EstimatedCost(now time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	if r.cost != nil {
		return *r.cost
	}
	return billing.Cost(r.BillingStart(), now, hourlyRate)
}

func (r *Reservation) ParkIn(at time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyReleased
	}
	if r.parkedInAt != nil {
		return ErrAlreadyParkedIn
	}
	if at.Before(r.reservedAt) {
		at = r.reservedAt
	}
	r.parkedInAt = &at
	r.updatedAt = at
	return nil
}

func (r *Reservation) Complete(at time.Time, cost decimal.Decimal) error {
	if r.status.IsTerminal() {
		return ErrAlreadyReleased
	}
	at = r.notBeforeStart(at)
	r.status = StatusCompleted
	r.releasedAt = &at
	r.cost = &cost
	r.updatedAt = at
	return nil
}

func (r *Reservation) Cancel(at time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyReleased
	}
	at = r.notBeforeStart(at)
	zero := decimal.Zero
	r.status = StatusCancelled
	r.releasedAt = &at
	r.cost = &zero
	r.updatedAt = at
	return nil
}

// notBeforeStart keeps released_at >= coalesce(parked_in_at, reserved_at) under clock skew.
func (r *Reservation) notBeforeStart(at time.Time) time.Time {
	if start := r.BillingStart(); at.Before(start) {
		return start
	}
	return at
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) SpotID() uuid.UUID            { return r.spotID }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) VehicleNumber() VehicleNumber { return r.vehicleNumber }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) ReservedAt() time.Time        { return r.reservedAt }
func (r *Reservation) ParkedInAt() *time.Time       { return r.parkedInAt }
func (r *Reservation) ReleasedAt() *time.Time       { return r.releasedAt }
func (r *Reservation) Cost() *decimal.Decimal       { return r.cost }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
