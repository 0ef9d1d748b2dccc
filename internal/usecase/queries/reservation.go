package queries

import (
	"context"

	"parking-core/internal/domain/billing"
	"parking-core/internal/domain/reservation"
	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const recentReservations = 5

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*ReservationView, error)
	ActiveForUser(ctx context.Context, userID uuid.UUID) (*ReservationView, error)
	ActiveForSpot(ctx context.Context, spotID uuid.UUID) (*ReservationView, error)
	History(ctx context.Context, userID uuid.UUID, filter HistoryFilter) (Page[*ReservationListItem], error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
	ListBookings(ctx context.Context, filter BookingFilter) (Page[*ReservationView], error)
	ForExport(ctx context.Context, filter ExportFilter) ([]*ExportRow, error)
}

// ReservationReadStore returns a NOT_FOUND repository error for missing rows,
// including when no reservation is active.
type ReservationReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*ReservationView, error)
	ActiveForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*ReservationView, error)
	ActiveForSpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, status *string, sort HistorySort, limit, offset int32) ([]*ReservationListItem, error)
	CountByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, status *string) (int64, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, filter BookingFilter, limit, offset int32) ([]*ReservationView, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, filter BookingFilter) (int64, error)
	ListForExport(ctx context.Context, db sqlc.DBTX, filter ExportFilter) ([]*ExportRow, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	stats StatsReadStore
	uow   shared.UnitOfWork
	calc  billing.Calculator
	clock clock.Clock
}

func NewReservationQueries(
	store ReservationReadStore,
	stats StatsReadStore,
	uow shared.UnitOfWork,
	calc billing.Calculator,
	clk clock.Clock,
) ReservationQueries {
	return &reservationQueriesImpl{store: store, stats: stats, uow: uow, calc: calc, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.store.FindByID(ctx, db, id)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !isAdmin && view.UserID != actorID {
		return nil, ErrNotOwner
	}
	q.estimate(view)
	return view, nil
}

// ActiveForUser returns nil without error when the user has nothing active.
func (q *reservationQueriesImpl) ActiveForUser(ctx context.Context, userID uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.store.ActiveForUser(ctx, db, userID)
		view = v
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	q.estimate(view)
	return view, nil
}

// ActiveForSpot returns nil without error when the spot is not reserved.
func (q *reservationQueriesImpl) ActiveForSpot(ctx context.Context, spotID uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.store.ActiveForSpot(ctx, db, spotID)
		view = v
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	q.estimate(view)
	return view, nil
}

func (q *reservationQueriesImpl) History(ctx context.Context, userID uuid.UUID, filter HistoryFilter) (Page[*ReservationListItem], error) {
	if filter.Sort == "" {
		filter.Sort = SortByCreatedAt
	}
	if !filter.Sort.IsValid() {
		return Page[*ReservationListItem]{}, errs.Wrapf(ErrInvalidFilter, "unknown sort %q", filter.Sort)
	}
	if err := validateStatus(filter.Status); err != nil {
		return Page[*ReservationListItem]{}, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	limit, offset := Offset(filter.Page, DefaultPerPage)

	var (
		items []*ReservationListItem
		total int64
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if items, err = q.store.ListByUser(ctx, db, userID, filter.Status, filter.Sort, limit, offset); err != nil {
			return err
		}
		total, err = q.store.CountByUser(ctx, db, userID, filter.Status)
		return err
	})
	if err != nil {
		return Page[*ReservationListItem]{}, err
	}
	return NewPage(items, total, filter.Page, DefaultPerPage), nil
}

func (q *reservationQueriesImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	out := &Dashboard{}
	now := q.clock.Now()
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		active, err := q.store.ActiveForUser(ctx, db, userID)
		switch {
		case err == nil:
			out.Active = active
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if out.Recent, err = q.store.ListByUser(ctx, db, userID, nil, SortByCreatedAt, recentReservations, 0); err != nil {
			return err
		}
		out.Summary, err = q.stats.UserSummary(ctx, db, userID, clock.StartOfMonth(now))
		return err
	})
	if err != nil {
		return nil, err
	}
	if out.Recent == nil {
		out.Recent = []*ReservationListItem{}
	}
	q.estimate(out.Active)
	return out, nil
}

func (q *reservationQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) (Page[*ReservationView], error) {
	if err := validateStatus(filter.Status); err != nil {
		return Page[*ReservationView]{}, err
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return Page[*ReservationView]{}, errs.Wrap(ErrInvalidFilter, "date_to is before date_from")
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	limit, offset := Offset(filter.Page, DefaultPerPage)

	var (
		items []*ReservationView
		total int64
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if items, err = q.store.ListBookings(ctx, db, filter, limit, offset); err != nil {
			return err
		}
		total, err = q.store.CountBookings(ctx, db, filter)
		return err
	})
	if err != nil {
		return Page[*ReservationView]{}, err
	}
	for _, v := range items {
		q.estimate(v)
	}
	return NewPage(items, total, filter.Page, DefaultPerPage), nil
}

func (q *reservationQueriesImpl) ForExport(ctx context.Context, filter ExportFilter) ([]*ExportRow, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errs.Wrap(ErrInvalidFilter, "to is before from")
	}
	var rows []*ExportRow
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.store.ListForExport(ctx, db, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// estimate fills the running cost of an active reservation.
func (q *reservationQueriesImpl) estimate(v *ReservationView) {
	if v == nil || v.Status != string(reservation.StatusActive) {
		return
	}
	start := v.ReservedAt
	if v.ParkedInAt != nil {
		start = *v.ParkedInAt
	}
	cost := q.calc.Cost(start, q.clock.Now(), v.LotPrice)
	v.EstimatedCost = &cost
}

func validateStatus(status *string) error {
	if status == nil {
		return nil
	}
	if !reservation.Status(*status).IsValid() {
		return errs.Wrapf(ErrInvalidFilter, "unknown status %q", *status)
	}
	return nil
}
