package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"parking-core/internal/infra/cache"
	"parking-core/internal/infra/db"
	"parking-core/internal/infra/jobs"
	sqlc "parking-core/internal/infra/sqlc/generated"
	"parking-core/internal/infra/uow"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/config"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/pkg/jwt"
	"parking-core/internal/pkg/password"
	"parking-core/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema and River queue migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error {
				if err := db.Migrate(ctx, pool, cfg.DB, dir); err != nil {
					return err
				}
				if err := jobs.Migrate(ctx, pool); err != nil {
					return err
				}
				slog.Info("Migrations complete")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "migrations", "directory of .sql migrations")
	return cmd
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete completed and cancelled reservations past the retention window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error {
				sweeper := jobs.NewSweeper(uow.NewPostgresUoW(pool, sqlc.New()), clock.NewRealClock(), cfg.Jobs.Retention())
				deleted, err := sweeper.Sweep(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("deleted %d reservations older than %d days\n", deleted, cfg.Jobs.RetentionDays)
				return nil
			})
		},
	}
}

func createAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first admin account from ADMIN_EMAIL and ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := config.LoadAdminConfig()
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error {
				clk := clock.NewRealClock()
				auth := commands.NewAuthCommands(
					uow.NewPostgresUoW(pool, sqlc.New()),
					password.NewBcryptHasher(),
					jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk),
					cache.NewNopCache(),
					clk,
				)
				return provisionAdmin(ctx, auth, admin, cmd.OutOrStdout())
			})
		},
	}
}

func provisionAdmin(ctx context.Context, auth commands.AuthCommands, admin config.AdminConfig, out io.Writer) error {
	u, err := auth.CreateAdmin(ctx, commands.RegisterInput{
		Email:    admin.Email,
		Password: admin.Password,
		FullName: admin.FullName,
	})
	if err != nil {
		return errs.Wrap(err, "create admin")
	}
	fmt.Fprintf(out, "created admin %s (%s)\n", u.Email().Value(), u.ID())
	return nil
}

func withPool(ctx context.Context, fn func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, cfg, pool)
}
