package response

import (
	"time"

	"parking-core/internal/domain/reservation"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID            uuid.UUID        `json:"id"`
	SpotID        uuid.UUID        `json:"spot_id"`
	SpotNumber    string           `json:"spot_number,omitempty"`
	LotID         uuid.UUID        `json:"lot_id,omitempty"`
	LotName       string           `json:"lot_name,omitempty"`
	LotPrice      *decimal.Decimal `json:"lot_price,omitempty"`
	UserID        uuid.UUID        `json:"user_id"`
	UserEmail     string           `json:"user_email,omitempty"`
	UserFullName  string           `json:"user_full_name,omitempty"`
	VehicleNumber string           `json:"vehicle_number"`
	Status        string           `json:"status"`
	ReservedAt    time.Time        `json:"reserved_at"`
	ParkedInAt    *time.Time       `json:"parked_in_at,omitempty"`
	ReleasedAt    *time.Time       `json:"released_at,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ReservationListResponse struct {
	ID            uuid.UUID        `json:"id"`
	SpotID        uuid.UUID        `json:"spot_id"`
	SpotNumber    string           `json:"spot_number"`
	LotID         uuid.UUID        `json:"lot_id"`
	LotName       string           `json:"lot_name"`
	VehicleNumber string           `json:"vehicle_number"`
	Status        string           `json:"status"`
	ReservedAt    time.Time        `json:"reserved_at"`
	ParkedInAt    *time.Time       `json:"parked_in_at,omitempty"`
	ReleasedAt    *time.Time       `json:"released_at,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ReserveResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Spot        *SpotResponse        `json:"spot"`
	Lot         *LotResponse         `json:"lot"`
}

type ReleaseResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Duration    decimal.Decimal      `json:"duration"`
	Cost        decimal.Decimal      `json:"cost"`
}

type OverrideResponse struct {
	Spot                 *SpotResponse        `json:"spot"`
	CancelledReservation *ReservationResponse `json:"cancelled_reservation,omitempty"`
	AdminHold            bool                 `json:"admin_hold"`
}

type DashboardResponse struct {
	Active  *ReservationResponse       `json:"active"`
	Recent  []*ReservationListResponse `json:"recent"`
	Summary *queries.UserSummary       `json:"summary"`
}


func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID(),
		SpotID:        r.SpotID(),
		UserID:        r.UserID(),
		VehicleNumber: r.VehicleNumber().Value(),
		Status:        r.Status().String(),
		ReservedAt:    r.ReservedAt(),
		ParkedInAt:    r.ParkedInAt(),
		ReleasedAt:    r.ReleasedAt(),
		Cost:          r.Cost(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

// FromReservationView returns nil for a nil view so "no active reservation"
// renders as JSON null.
func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	if v == nil {
		return nil
	}
	res := copyFrom[ReservationResponse](v)
	price := v.LotPrice
	res.LotPrice = &price
	return res
}

func FromReservationPage(p queries.Page[*queries.ReservationView]) *PageResponse[*ReservationResponse] {
	items := make([]*ReservationResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromReservationView(v)
	}
	return &PageResponse[*ReservationResponse]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

func FromHistoryPage(p queries.Page[*queries.ReservationListItem]) *PageResponse[*ReservationListResponse] {
	return &PageResponse[*ReservationListResponse]{
		Items:      copyAll[ReservationListResponse](p.Items),
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

func FromDashboard(d *queries.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Active:  FromReservationView(d.Active),
		Recent:  copyAll[ReservationListResponse](d.Recent),
		Summary: d.Summary,
	}
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		Reservation: FromReservation(r.Reservation),
		Spot:        FromSpot(r.Spot),
		Lot:         FromLot(r.Lot),
	}
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		Reservation: FromReservation(r.Reservation),
		Duration:    r.DurationHours,
		Cost:        r.Cost,
	}
}

func FromOverrideResult(r *commands.OverrideResult) *OverrideResponse {
	res := &OverrideResponse{Spot: FromSpot(r.Spot), AdminHold: r.AdminHold}
	if r.Cancelled != nil {
		res.CancelledReservation = FromReservation(r.Cancelled)
	}
	return res
}
