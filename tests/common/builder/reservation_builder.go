//go:build unit || e2e

package builder

import (
	"time"

	"parking-core/internal/domain/reservation"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	SpotID        uuid.UUID
	UserID        uuid.UUID
	LotID         uuid.UUID
	VehicleNumber string
	Status        string
	ReservedAt    time.Time
	ParkedInAt    *time.Time
	ReleasedAt    *time.Time
	Cost          *decimal.Decimal
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		SpotID:        uuid.New(),
		UserID:        uuid.New(),
		LotID:         uuid.New(),
		VehicleNumber: "KA01AB1234",
		Status:        "active",
		ReservedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Completed marks the reservation released after the given duration at the given cost.
func (b *ReservationBuilder) Completed(after time.Duration, cost decimal.Decimal) *ReservationBuilder {
	released := b.ReservedAt.Add(after)
	b.Status = "completed"
	b.ReleasedAt = &released
	b.Cost = &cost
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	vehicle, err := reservation.NewVehicleNumber(b.VehicleNumber)
	if err != nil {
		return nil, err
	}
	status, err := reservation.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		b.ID, b.SpotID, b.UserID, vehicle, status,
		b.ReservedAt, b.ParkedInAt, b.ReleasedAt, b.Cost,
		b.ReservedAt, b.ReservedAt,
	), nil
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		SpotID:        b.SpotID,
		SpotNumber:    "Central-001",
		LotID:         b.LotID,
		LotName:       "Central",
		LotPrice:      decimal.NewFromInt(10),
		UserID:        b.UserID,
		UserEmail:     "test@example.com",
		UserFullName:  "Test Driver",
		VehicleNumber: b.VehicleNumber,
		Status:        b.Status,
		ReservedAt:    b.ReservedAt,
		ParkedInAt:    b.ParkedInAt,
		ReleasedAt:    b.ReleasedAt,
		Cost:          b.Cost,
		CreatedAt:     b.ReservedAt,
		UpdatedAt:     b.ReservedAt,
	}
}
