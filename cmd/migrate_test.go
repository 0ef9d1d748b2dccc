//go:build unit

package main

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"parking-core/internal/domain/user"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/commands"
	commandsmock "parking-core/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProvisionAdmin(t *testing.T) {
	admin := config.AdminConfig{Email: "root@example.com", Password: "password123", FullName: "Administrator"}
	want := commands.RegisterInput{Email: "root@example.com", Password: "password123", FullName: "Administrator"}

	t.Run("reports the created account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := commandsmock.NewMockAuthCommands(ctrl)
		email, err := user.NewEmail(admin.Email)
		require.NoError(t, err)
		name, err := user.NewFullName(admin.FullName)
		require.NoError(t, err)
		created := user.NewAdmin(email, name, "hash", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		auth.EXPECT().CreateAdmin(gomock.Any(), want).Return(created, nil)

		var out bytes.Buffer
		err = provisionAdmin(context.Background(), auth, admin, &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "created admin root@example.com")
		assert.Contains(t, out.String(), created.ID().String())
	})

	t.Run("refuses when an admin exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := commandsmock.NewMockAuthCommands(ctrl)
		auth.EXPECT().CreateAdmin(gomock.Any(), want).Return(nil, commands.ErrAdminAlreadyExists)

		var out bytes.Buffer
		err := provisionAdmin(context.Background(), auth, admin, &out)

		assert.True(t, errs.Is(err, commands.ErrAdminAlreadyExists))
		assert.Empty(t, out.String())
	})
}

func TestCreateAdminCmd_RequiresCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	require.NoError(t, unsetenv("ADMIN_EMAIL", "ADMIN_PASSWORD"))

	cmd := createAdminCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()

	assert.ErrorContains(t, err, "ADMIN_EMAIL")
}

func unsetenv(keys ...string) error {
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			return err
		}
	}
	return nil
}
