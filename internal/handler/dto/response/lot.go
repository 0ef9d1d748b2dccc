package response

import (
	"time"

	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/spot"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Address        string          `json:"address"`
	PinCode        string          `json:"pin_code"`
	NumberOfSpots  int             `json:"number_of_spots"`
	AvailableSpots int64           `json:"available_spots"`
	OccupiedSpots  int64           `json:"occupied_spots"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SpotResponse struct {
	ID         uuid.UUID `json:"id"`
	LotID      uuid.UUID `json:"lot_id"`
	SpotNumber string    `json:"spot_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateLotResponse struct {
	Lot   *LotResponse    `json:"lot"`
	Spots []*SpotResponse `json:"spots"`
}

func FromLotView(v *queries.LotView) *LotResponse {
	return copyFrom[LotResponse](v)
}

func FromLotViews(vs []*queries.LotView) []*LotResponse {
	return copyAll[LotResponse](vs)
}

// FromLot has no live counts; callers that need them reload the view.
func FromLot(l *lot.Lot) *LotResponse {
	return &LotResponse{
		ID:            l.ID(),
		Name:          l.Name().Value(),
		Price:         l.HourlyRate(),
		Address:       l.Address().Value(),
		PinCode:       l.PinCode().Value(),
		NumberOfSpots: l.NumberOfSpots(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func FromSpot(s *spot.Spot) *SpotResponse {
	return &SpotResponse{
		ID:         s.ID(),
		LotID:      s.LotID(),
		SpotNumber: s.Number(),
		Status:     s.Status().String(),
		CreatedAt:  s.CreatedAt(),
	}
}

func FromSpots(ss []*spot.Spot) []*SpotResponse {
	out := make([]*SpotResponse, len(ss))
	for i, s := range ss {
		out[i] = FromSpot(s)
	}
	return out
}

func FromSpotViews(vs []*queries.SpotView) []*SpotResponse {
	return copyAll[SpotResponse](vs)
}

func FromCreateLot(l *lot.Lot, spots []*spot.Spot) *CreateLotResponse {
	lr := FromLot(l)
	lr.AvailableSpots = int64(len(spots))
	return &CreateLotResponse{Lot: lr, Spots: FromSpots(spots)}
}
