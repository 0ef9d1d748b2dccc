package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	fullName     FullName
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a regular account.
func NewUser(email Email, fullName FullName, passwordHash string, now time.Time) *User {
	return newUser(email, fullName, passwordHash, RoleUser, now)
}

// NewAdmin is only used by operator provisioning, never by self-registration.
func NewAdmin(email Email, fullName FullName, passwordHash string, now time.Time) *User {
	return newUser(email, fullName, passwordHash, RoleAdmin, now)
}

func newUser(email Email, fullName FullName, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	fullName FullName,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) FullName() FullName    { return u.fullName }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) RecordLogin(at time.Time) {
	u.lastLogin = &at
	u.updatedAt = at
}

func (u *User) ToggleActive(now time.Time) {
	u.isActive = !u.isActive
	u.updatedAt = now
}

func (u *User) Rename(fullName FullName, now time.Time) {
	u.fullName = fullName
	u.updatedAt = now
}
