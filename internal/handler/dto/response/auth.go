package response

import (
	"time"

	"parking-core/internal/domain/user"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

type AdminUserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Role              string     `json:"role"`
	IsActive          bool       `json:"is_active"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	TotalReservations int64      `json:"total_reservations"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		FullName: u.FullName().Value(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return copyFrom[UserResponse](v)
}

func FromLogin(u *user.User, token string, expiresIn time.Duration) *LoginResponse {
	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(expiresIn.Seconds()),
		User:        FromUser(u),
	}
}

func FromUserPage(p queries.Page[*queries.UserView]) *PageResponse[*AdminUserResponse] {
	return &PageResponse[*AdminUserResponse]{
		Items:      copyAll[AdminUserResponse](p.Items),
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}
