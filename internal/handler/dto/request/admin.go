package request

import (
	"strings"

	"parking-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotRequest struct {
	Name    string          `json:"name" binding:"required,max=100"`
	Price   decimal.Decimal `json:"price" binding:"required"`
	Address string          `json:"address" binding:"required"`
	PinCode string          `json:"pin_code" binding:"required,max=10"`
	Spots   int             `json:"number_of_spots" binding:"required,min=1"`
}

func (r *LotRequest) ToInput() commands.LotInput {
	return commands.LotInput{
		Name:    strings.TrimSpace(r.Name),
		Price:   r.Price,
		Address: strings.TrimSpace(r.Address),
		PinCode: strings.TrimSpace(r.PinCode),
		Spots:   r.Spots,
	}
}

type AddSpotRequest struct {
	SpotNumber *string `json:"spot_number,omitempty" binding:"omitempty,max=20"`
}

type RemoveSpotsRequest struct {
	SpotIDs []uuid.UUID `json:"spot_ids" binding:"required,min=1"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied"`
}
