package readstore

import (
	"context"
	"time"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.ListUsersRow, error)
	CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
	ListIdleUsers(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) ([]sqlc.ListIdleUsersRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, nil
}

func (r *UserReadStore) List(ctx context.Context, db sqlc.DBTX, limit, offset int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, db, sqlc.ListUsersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.UserView{
			ID:                row.ID,
			Email:             row.Email,
			FullName:          row.FullName,
			Role:              row.Role,
			IsActive:          row.IsActive,
			LastLoginAt:       pgconv.TimePtrFromPgtype(row.LastLoginAt),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
			TotalReservations: row.TotalReservations,
		})
	}
	return views, nil
}

func (r *UserReadStore) Count(ctx context.Context, db sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountUsers(ctx, db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

// Idle lists active regular accounts older than since with no reservation
// made after since and none still running.
func (r *UserReadStore) Idle(ctx context.Context, db sqlc.DBTX, since time.Time) ([]*queries.UserView, error) {
	rows, err := r.queries.ListIdleUsers(ctx, db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list idle users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.UserView{
			ID:                row.ID,
			Email:             row.Email,
			FullName:          row.FullName,
			Role:              row.Role,
			IsActive:          row.IsActive,
			LastLoginAt:       pgconv.TimePtrFromPgtype(row.LastLoginAt),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
			TotalReservations: row.TotalReservations,
		})
	}
	return views, nil
}
