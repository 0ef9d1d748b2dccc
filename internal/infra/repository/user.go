package repository

import (
	"context"
	"time"

	"parking-core/internal/domain/user"
	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserActive(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserActiveParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	UpdateUserFullName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserFullNameParams) (int64, error)
	CountUsersByRole(ctx context.Context, db sqlc.DBTX, role string) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	_, err := r.queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName().Value(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return userFromRow(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, db sqlc.DBTX, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return userFromRow(row)
}

func (r *UserRepository) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByIDForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return userFromRow(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, db, sqlc.UpdateUserLastLoginParams{
		ID:          id,
		LastLoginAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, db sqlc.DBTX, id uuid.UUID, active bool, at time.Time) error {
	affected, err := r.queries.UpdateUserActive(ctx, db, sqlc.UpdateUserActiveParams{
		ID:        id,
		IsActive:  active,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateFullName(ctx context.Context, db sqlc.DBTX, id uuid.UUID, name user.FullName, at time.Time) error {
	affected, err := r.queries.UpdateUserFullName(ctx, db, sqlc.UpdateUserFullNameParams{
		ID:        id,
		FullName:  name.Value(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user full name", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, db sqlc.DBTX, role user.Role) (int64, error) {
	n, err := r.queries.CountUsersByRole(ctx, db, role.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users by role", err)
	}
	return n, nil
}

func userFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored email", err)
	}
	fullName, err := user.NewFullName(row.FullName)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored full name", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored role", err)
	}
	return user.ReconstructUser(
		row.ID,
		email,
		fullName,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
