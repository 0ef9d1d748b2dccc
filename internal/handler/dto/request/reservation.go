package request

import (
	"fmt"
	"strings"
	"time"

	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	SpotID        uuid.UUID `json:"spot_id" binding:"required"`
	VehicleNumber string    `json:"vehicle_number" binding:"required,max=20"`
}

func (r *ReserveRequest) ToInput(userID, lotID uuid.UUID) commands.ReserveInput {
	return commands.ReserveInput{
		UserID:        userID,
		LotID:         lotID,
		SpotID:        r.SpotID,
		VehicleNumber: strings.TrimSpace(r.VehicleNumber),
	}
}

type HistoryQuery struct {
	Status string `form:"status"`
	Sort   string `form:"sort"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

func (q *HistoryQuery) ToFilter() queries.HistoryFilter {
	return queries.HistoryFilter{
		Status: optional(q.Status),
		Sort:   queries.HistorySort(q.Sort),
		Page:   q.Page,
	}
}

type BookingQuery struct {
	LotID    string `form:"lot_id"`
	UserID   string `form:"user_id"`
	SpotID   string `form:"spot_id"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

const dateLayout = "2006-01-02"

// ToFilter makes DateTo inclusive of the whole named day.
func (q *BookingQuery) ToFilter() (queries.BookingFilter, error) {
	f := queries.BookingFilter{Status: optional(q.Status), Page: q.Page}
	var err error
	if f.LotID, err = optionalUUID("lot_id", q.LotID); err != nil {
		return f, err
	}
	if f.UserID, err = optionalUUID("user_id", q.UserID); err != nil {
		return f, err
	}
	if f.SpotID, err = optionalUUID("spot_id", q.SpotID); err != nil {
		return f, err
	}
	if f.DateFrom, err = optionalDate("date_from", q.DateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = optionalDate("date_to", q.DateTo); err != nil {
		return f, err
	}
	if f.DateTo != nil {
		end := f.DateTo.AddDate(0, 0, 1)
		f.DateTo = &end
	}
	return f, nil
}

type ExportReportRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalUUID(name, s string) (*uuid.UUID, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &id, nil
}

func optionalDate(name, s string) (*time.Time, error) {
	if s = strings.TrimSpace(s); s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}
