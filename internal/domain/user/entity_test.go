//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"parking-core/internal/domain/user"
	"parking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は小文字に正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Driver@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("氏名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithFullName(strings.Repeat("a", 100)) },
			},
			{
				name:   "空の氏名NG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName("  ") },
				errIs:  user.ErrInvalidFullName,
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName(strings.Repeat("a", 101)) },
				errIs:  user.ErrInvalidFullName,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestUser_StateChanges(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	u.RecordLogin(now)
	require.NotNil(t, u.LastLogin())
	assert.Equal(t, now, *u.LastLogin())

	u.ToggleActive(now)
	assert.False(t, u.IsActive())
	u.ToggleActive(now)
	assert.True(t, u.IsActive())

	renamed, err := user.NewFullName("  New Name ")
	require.NoError(t, err)
	later := now.Add(time.Hour)
	u.Rename(renamed, later)
	assert.Equal(t, "New Name", u.FullName().Value())
	assert.Equal(t, later, u.UpdatedAt())
}

func TestNewAdmin(t *testing.T) {
	email, err := user.NewEmail("root@example.com")
	require.NoError(t, err)
	name, err := user.NewFullName("Operator")
	require.NoError(t, err)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	admin := user.NewAdmin(email, name, "hash", now)
	driver := user.NewUser(email, name, "hash", now)

	assert.Equal(t, user.RoleAdmin, admin.Role())
	assert.True(t, admin.IsActive())
	assert.Equal(t, user.RoleUser, driver.Role())
	assert.NotEqual(t, admin.ID(), driver.ID())
}

func TestNewCredentials(t *testing.T) {
	_, err := user.NewCredentials("driver@example.com", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewCredentials("not-an-email", "password123")
	require.ErrorIs(t, err, user.ErrInvalidEmail)

	creds, err := user.NewCredentials(" Driver@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "driver@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
