package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultPerPage = 10

// AuthorizedUserView is the principal as seen by auth checks and /me.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Role              string     `json:"role"`
	IsActive          bool       `json:"is_active"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	TotalReservations int64      `json:"total_reservations"`
}

type LotView struct {
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

type SpotView struct {
	ID         uuid.UUID `json:"id"`
	LotID      uuid.UUID `json:"lot_id"`
	SpotNumber string    `json:"spot_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReservationView joins a reservation with its spot, lot and owner.
// EstimatedCost is filled for active reservations only.
type ReservationView struct {
	ID            uuid.UUID        `json:"id"`
	SpotID        uuid.UUID        `json:"spot_id"`
	SpotNumber    string           `json:"spot_number"`
	LotID         uuid.UUID        `json:"lot_id"`
	LotName       string           `json:"lot_name"`
	LotPrice      decimal.Decimal  `json:"lot_price"`
	UserID        uuid.UUID        `json:"user_id"`
	UserEmail     string           `json:"user_email"`
	UserFullName  string           `json:"user_full_name"`
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

type ReservationListItem struct {
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

type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, total int64, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Page[T]{Items: items, Total: total, Page: page, PerPage: perPage, TotalPages: pages}
}

// Offset computes LIMIT/OFFSET for a 1-based page number.
func Offset(page, perPage int) (limit, offset int32) {
	if page < 1 {
		page = 1
	}
	// #nosec G115 -- page and perPage are validated by the handler
	return int32(perPage), int32((page - 1) * perPage)
}

type HistorySort string

const (
	SortByCreatedAt  HistorySort = "created_at"
	SortByReservedAt HistorySort = "reserved_at"
	SortByCost       HistorySort = "cost"
)

func (s HistorySort) IsValid() bool {
	switch s {
	case SortByCreatedAt, SortByReservedAt, SortByCost:
		return true
	default:
		return false
	}
}

type HistoryFilter struct {
	Status *string
	Sort   HistorySort
	Page   int
}

type BookingFilter struct {
	LotID    *uuid.UUID
	UserID   *uuid.UUID
	SpotID   *uuid.UUID
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
}

type ExportFilter struct {
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
}

type ExportRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	LotName       string
	SpotNumber    string
	VehicleNumber string
	StartTime     time.Time
	EndTime       *time.Time
	Cost          *decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

type OverviewStats struct {
	TotalUsers         int64           `json:"total_users"`
	TotalLots          int64           `json:"total_lots"`
	TotalSpots         int64           `json:"total_spots"`
	AvailableSpots     int64           `json:"available_spots"`
	OccupiedSpots      int64           `json:"occupied_spots"`
	ActiveReservations int64           `json:"active_reservations"`
	TodayRevenue       decimal.Decimal `json:"today_revenue"`
	MonthRevenue       decimal.Decimal `json:"month_revenue"`
}

type LotAnalytics struct {
	LotID             uuid.UUID       `json:"lot_id"`
	LotName           string          `json:"lot_name"`
	TotalReservations int64           `json:"total_reservations"`
	Revenue           decimal.Decimal `json:"revenue"`
}

type MonthlyCount struct {
	Month        string `json:"month"`
	Reservations int64  `json:"reservations"`
}

type Analytics struct {
	Lots    []LotAnalytics `json:"lots"`
	Monthly []MonthlyCount `json:"monthly"`
}

type UserSummary struct {
	TotalReservations int64           `json:"total_reservations"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	ThisMonth         int64           `json:"this_month"`
}

type Dashboard struct {
	Active  *ReservationView       `json:"active,omitempty"`
	Recent  []*ReservationListItem `json:"recent"`
	Summary *UserSummary           `json:"summary"`
}

type PeriodReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Reservations int64           `json:"reservations"`
	Revenue      decimal.Decimal `json:"revenue"`
	ActiveUsers  int64           `json:"active_users"`
}
