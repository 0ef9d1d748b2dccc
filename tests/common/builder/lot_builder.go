//go:build unit || e2e

package builder

import (
	"time"

	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/spot"
	reqdto "parking-core/internal/handler/dto/request"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	Address       string
	PinCode       string
	NumberOfSpots int
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:            uuid.New(),
		Name:          "Central",
		Price:         decimal.NewFromInt(10),
		Address:       "1 Main Street",
		PinCode:       "560001",
		NumberOfSpots: 3,
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) BuildDomain() (*lot.Lot, error) {
	attrs, err := lot.NewAttributes(b.Name, b.Price, b.Address, b.PinCode)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return lot.ReconstructLot(b.ID, attrs, b.NumberOfSpots, now, now), nil
}

// BuildSpots returns the lot's spots, all available.
func (b *LotBuilder) BuildSpots() []*spot.Spot {
	now := time.Now()
	spots := make([]*spot.Spot, 0, b.NumberOfSpots)
	for _, n := range spot.Numbers(b.Name, 0, b.NumberOfSpots) {
		spots = append(spots, spot.ReconstructSpot(uuid.New(), b.ID, n, spot.StatusAvailable, now))
	}
	return spots
}

func (b *LotBuilder) BuildReadModel() *queries.LotView {
	now := time.Now()
	return &queries.LotView{
		ID:             b.ID,
		Name:           b.Name,
		Price:          b.Price,
		Address:        b.Address,
		PinCode:        b.PinCode,
		NumberOfSpots:  b.NumberOfSpots,
		AvailableSpots: int64(b.NumberOfSpots),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *LotBuilder) BuildDTO() reqdto.LotRequest {
	return reqdto.LotRequest{
		Name:    b.Name,
		Price:   b.Price,
		Address: b.Address,
		PinCode: b.PinCode,
		Spots:   b.NumberOfSpots,
	}
}
