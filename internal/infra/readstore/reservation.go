package readstore

import (
	"context"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationDetailRow, error)
	GetActiveReservationDetailByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetActiveReservationDetailByUserRow, error)
	GetActiveReservationDetailBySpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (sqlc.GetActiveReservationDetailBySpotRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.ListReservationsByUserRow, error)
	CountReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByUserParams) (int64, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	CountBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsParams) (int64, error)
	ListReservationsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsForExportParams) ([]sqlc.ListReservationsForExportRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
}

func NewReservationReadStore(queries ReservationReadQueries) *ReservationReadStore {
	return &ReservationReadStore{queries: queries}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return toReservationView(row)
}

func (r *ReservationReadStore) ActiveForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetActiveReservationDetailByUser(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active reservation for user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active reservation for user", err)
	}
	return toReservationView(sqlc.GetReservationDetailRow(row))
}

func (r *ReservationReadStore) ActiveForSpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetActiveReservationDetailBySpot(ctx, db, spotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active reservation for spot", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active reservation for spot", err)
	}
	return toReservationView(sqlc.GetReservationDetailRow(row))
}

func (r *ReservationReadStore) ListByUser(
	ctx context.Context,
	db sqlc.DBTX,
	userID uuid.UUID,
	status *string,
	sort queries.HistorySort,
	limit, offset int32,
) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, db, sqlc.ListReservationsByUserParams{
		UserID: userID,
		Status: pgconv.StringPtrToPgtype(status),
		SortBy: string(sort),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation cost", err)
		}
		items = append(items, &queries.ReservationListItem{
			ID:            row.ID,
			SpotID:        row.SpotID,
			SpotNumber:    row.SpotNumber,
			LotID:         row.LotID,
			LotName:       row.LotName,
			VehicleNumber: row.VehicleNumber,
			Status:        row.Status,
			ReservedAt:    pgconv.TimeFromPgtype(row.ReservedAt),
			ParkedInAt:    pgconv.TimePtrFromPgtype(row.ParkedInAt),
			ReleasedAt:    pgconv.TimePtrFromPgtype(row.ReleasedAt),
			Cost:          cost,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *ReservationReadStore) CountByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, status *string) (int64, error) {
	n, err := r.queries.CountReservationsByUser(ctx, db, sqlc.CountReservationsByUserParams{
		UserID: userID,
		Status: pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations by user", err)
	}
	return n, nil
}

func (r *ReservationReadStore) ListBookings(ctx context.Context, db sqlc.DBTX, f queries.BookingFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	p := bookingParams(f)
	rows, err := r.queries.ListBookings(ctx, db, sqlc.ListBookingsParams{
		LotID:    p.LotID,
		UserID:   p.UserID,
		SpotID:   p.SpotID,
		Status:   p.Status,
		DateFrom: p.DateFrom,
		DateTo:   p.DateTo,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := toReservationView(sqlc.GetReservationDetailRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *ReservationReadStore) CountBookings(ctx context.Context, db sqlc.DBTX, f queries.BookingFilter) (int64, error) {
	n, err := r.queries.CountBookings(ctx, db, bookingParams(f))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}

func (r *ReservationReadStore) ListForExport(ctx context.Context, db sqlc.DBTX, f queries.ExportFilter) ([]*queries.ExportRow, error) {
	rows, err := r.queries.ListReservationsForExport(ctx, db, sqlc.ListReservationsForExportParams{
		UserID:   pgconv.UUIDPtrToPgtype(f.UserID),
		DateFrom: pgconv.TimePtrToPgtype(f.From),
		DateTo:   pgconv.TimePtrToPgtype(f.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for export", err)
	}

	out := make([]*queries.ExportRow, 0, len(rows))
	for _, row := range rows {
		cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation cost", err)
		}
		start := pgconv.TimeFromPgtype(row.ReservedAt)
		if row.ParkedInAt.Valid {
			start = row.ParkedInAt.Time
		}
		out = append(out, &queries.ExportRow{
			ID:            row.ID,
			UserID:        row.UserID,
			LotName:       row.LotName,
			SpotNumber:    row.SpotNumber,
			VehicleNumber: row.VehicleNumber,
			StartTime:     start,
			EndTime:       pgconv.TimePtrFromPgtype(row.ReleasedAt),
			Cost:          cost,
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func bookingParams(f queries.BookingFilter) sqlc.CountBookingsParams {
	return sqlc.CountBookingsParams{
		LotID:    pgconv.UUIDPtrToPgtype(f.LotID),
		UserID:   pgconv.UUIDPtrToPgtype(f.UserID),
		SpotID:   pgconv.UUIDPtrToPgtype(f.SpotID),
		Status:   pgconv.StringPtrToPgtype(f.Status),
		DateFrom: pgconv.TimePtrToPgtype(f.DateFrom),
		DateTo:   pgconv.TimePtrToPgtype(f.DateTo),
	}
}

func toReservationView(row sqlc.GetReservationDetailRow) (*queries.ReservationView, error) {
	price, err := pgconv.DecimalFromNumeric(row.LotPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lot price", err)
	}
	cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation cost", err)
	}
	return &queries.ReservationView{
		ID:            row.ID,
		SpotID:        row.SpotID,
		SpotNumber:    row.SpotNumber,
		LotID:         row.LotID,
		LotName:       row.LotName,
		LotPrice:      price,
		UserID:        row.UserID,
		UserEmail:     row.UserEmail,
		UserFullName:  row.UserFullName,
		VehicleNumber: row.VehicleNumber,
		Status:        row.Status,
		ReservedAt:    pgconv.TimeFromPgtype(row.ReservedAt),
		ParkedInAt:    pgconv.TimePtrFromPgtype(row.ParkedInAt),
		ReleasedAt:    pgconv.TimePtrFromPgtype(row.ReleasedAt),
		Cost:          cost,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

