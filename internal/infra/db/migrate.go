package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"parking-core/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/jackc/pgx/v5/pgxpool"
)

const migrationsTable = "schema_migrations"

// Migrate applies dir with the atlas CLI when it is installed. Without it the
// .sql files are applied in name order and recorded in schema_migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg config.DBConfig, dir string) error {
	if _, err := exec.LookPath("atlas"); err == nil {
		return migrateWithAtlas(ctx, cfg, dir)
	}
	slog.Info("atlas binary not found, applying migrations directly", "dir", dir)
	return migrateFiles(ctx, pool, dir)
}

func migrateWithAtlas(ctx context.Context, cfg config.DBConfig, dir string) error {
	client, err := atlasexec.NewClient("", "atlas")
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations dir: %w", err)
	}
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + abs,
	})
	if err != nil {
		return fmt.Errorf("atlas migrate apply: %w", err)
	}
	slog.Info("Migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}

func migrateFiles(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("failed to create %s: %w", migrationsTable, err)
	}

	for _, file := range files {
		version := strings.TrimSuffix(filepath.Base(file), ".sql")

		var applied bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM `+migrationsTable+` WHERE version = $1)`, version,
		).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", version, err)
		}
		if applied {
			continue
		}

		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", version, err)
		}
		if _, err := tx.Exec(ctx, string(sqlContent)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to execute migration %s: %w", version, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO `+migrationsTable+` (version) VALUES ($1)`, version); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
		slog.Info("Migration applied", "version", version)
	}
	return nil
}
