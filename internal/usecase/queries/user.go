package queries

import (
	"context"
	"time"

	"parking-core/internal/infra"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const usersPerPage = 20

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	ListUsers(ctx context.Context, page int) (Page[*UserView], error)
	InactiveSince(ctx context.Context, since time.Time) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*AuthorizedUserView, error)
	List(ctx context.Context, db sqlc.DBTX, limit, offset int32) ([]*UserView, error)
	Count(ctx context.Context, db sqlc.DBTX) (int64, error)
	Idle(ctx context.Context, db sqlc.DBTX, since time.Time) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	uow       shared.UnitOfWork
}

func NewUserQueries(readStore UserReadStore, uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
		uow:       uow,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	var user *AuthorizedUserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		user, err = q.readStore.FindByID(ctx, db, userID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, page int) (Page[*UserView], error) {
	if page < 1 {
		page = 1
	}
	limit, offset := Offset(page, usersPerPage)

	var (
		users []*UserView
		total int64
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if users, err = q.readStore.List(ctx, db, limit, offset); err != nil {
			return err
		}
		total, err = q.readStore.Count(ctx, db)
		return err
	})
	if err != nil {
		return Page[*UserView]{}, err
	}
	return NewPage(users, total, page, usersPerPage), nil
}

// InactiveSince returns regular accounts that have not reserved anything since the cutoff.
func (q *userQueriesImpl) InactiveSince(ctx context.Context, since time.Time) ([]*UserView, error) {
	var users []*UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		users, err = q.readStore.Idle(ctx, db, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
