package shared

import (
	"context"
	"time"

	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/reservation"
	"parking-core/internal/domain/spot"
	"parking-core/internal/domain/user"
	sqlc "parking-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Spots() SpotRepository
	Reservations() ReservationRepository
	Lots() LotRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

// SpotRepository is the spot registry. Status changes go through Claim,
// Release and SetStatus only.
type SpotRepository interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error)
	FindAvailable(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error)
	ListByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) ([]*spot.Spot, error)
	LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error)
	Claim(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*spot.Spot, error)
	Release(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	SetStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status spot.Status) (*spot.Spot, error)
	AddSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, numbers []string) ([]*spot.Spot, error)
	RemoveSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, ids []uuid.UUID) (int64, error)
	RemovableSpots(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID, limit int) ([]*spot.Spot, error)
}

// ReservationRepository is the reservation ledger. ActiveFor* return nil, nil
// when nothing is active.
type ReservationRepository interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	ActiveForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*reservation.Reservation, error)
	ActiveForSpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, db sqlc.DBTX, r *reservation.Reservation) error
	MarkParkedIn(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error
	Complete(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time, cost decimal.Decimal) error
	Cancel(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error
	DeleteTerminalBefore(ctx context.Context, db sqlc.DBTX, cutoff time.Time) (int64, error)
}

type LotRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, l *lot.Lot) error
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*lot.Lot, error)
	LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*lot.Lot, error)
	Update(ctx context.Context, db sqlc.DBTX, l *lot.Lot) error
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	OccupiedSpotCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SyncSpotCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, db sqlc.DBTX, email user.Email) (*user.User, error)
	LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, db sqlc.DBTX, id uuid.UUID, active bool, at time.Time) error
	UpdateFullName(ctx context.Context, db sqlc.DBTX, id uuid.UUID, name user.FullName, at time.Time) error
	CountByRole(ctx context.Context, db sqlc.DBTX, role user.Role) (int64, error)
}
