package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-core/internal/domain/user"
	"parking-core/internal/infra"
	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/pkg/jwt"
	"parking-core/internal/pkg/password"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ToggleUserActive(ctx context.Context, actorID, userID uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*user.User, error)
	CreateAdmin(ctx context.Context, in RegisterInput) (*user.User, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     password.Hasher
	jwtService *jwt.Service
	cache      cache.Cache
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	hasher password.Hasher,
	jwtService *jwt.Service,
	c cache.Cache,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		cache:      c,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	credentials, fullName, hash, err := a.prepareAccount(in)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(credentials.Email(), fullName, hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyRegistered)
			}
			return translate(err, nil, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User registered", "user_id", u.ID())
	invalidateStats(ctx, a.cache)
	return u, nil
}

// CreateAdmin provisions the first admin account. It refuses once any admin exists.
func (a *authCommandsImpl) CreateAdmin(ctx context.Context, in RegisterInput) (*user.User, error) {
	credentials, fullName, hash, err := a.prepareAccount(in)
	if err != nil {
		return nil, err
	}

	u := user.NewAdmin(credentials.Email(), fullName, hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		admins, err := tx.Users().CountByRole(ctx, tx.DB(), user.RoleAdmin)
		if err != nil {
			return translate(err, nil, nil)
		}
		if admins > 0 {
			return ErrAdminAlreadyExists
		}
		if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyRegistered)
			}
			return translate(err, nil, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Admin created", "user_id", u.ID())
	invalidateStats(ctx, a.cache)
	return u, nil
}

func (a *authCommandsImpl) prepareAccount(in RegisterInput) (user.Credentials, user.FullName, string, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return user.Credentials{}, user.FullName{}, "", errs.Mark(err, ErrInvalidRegistration)
	}
	fullName, err := user.NewFullName(in.FullName)
	if err != nil {
		return user.Credentials{}, user.FullName{}, "", errs.Mark(err, ErrInvalidRegistration)
	}
	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return user.Credentials{}, user.FullName{}, "", errs.Mark(err, ErrInvalidRegistration)
	}
	return credentials, fullName, hash, nil
}

// Login checks the password before the account state, so an inactive account
// is only revealed to someone who already knows its password.
func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, pw)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		u, err = tx.Users().FindByEmail(ctx, tx.DB(), credentials.Email())
		return err
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, translate(err, nil, nil)
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID(), now)
	})
	if err != nil {
		// Login already succeeded; only the last_login bookkeeping failed
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	} else {
		u.RecordLogin(now)
	}

	return &LoginResult{
		User:      u,
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) ToggleUserActive(ctx context.Context, actorID, userID uuid.UUID) (*user.User, error) {
	if actorID == userID {
		return nil, ErrCannotDeactivateSelf
	}

	var toggled *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().LockByID(ctx, tx.DB(), userID)
		if err != nil {
			return translate(err, ErrUserNotFound, nil)
		}
		now := a.clock.Now()
		u.ToggleActive(now)
		if err := tx.Users().SetActive(ctx, tx.DB(), u.ID(), u.IsActive(), now); err != nil {
			return translate(err, ErrUserNotFound, nil)
		}
		toggled = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User status toggled", "user_id", userID, "is_active", toggled.IsActive(), "by", actorID)
	invalidateStats(ctx, a.cache)
	return toggled, nil
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName string) (*user.User, error) {
	name, err := user.NewFullName(fullName)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProfile)
	}

	var updated *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().LockByID(ctx, tx.DB(), userID)
		if err != nil {
			return translate(err, ErrUserNotFound, nil)
		}
		if !u.IsActive() {
			return ErrUserInactive
		}
		now := a.clock.Now()
		u.Rename(name, now)
		if err := tx.Users().UpdateFullName(ctx, tx.DB(), u.ID(), name, now); err != nil {
			return translate(err, ErrUserNotFound, nil)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User profile updated", "user_id", userID)
	return updated, nil
}
