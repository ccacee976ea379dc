package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/turso"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations against the configured database.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  vlsi-web migrate      # Run all pending migrations
  vlsi-web migrate 1    # Migrate to version 1
  vlsi-web migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("no database configured, set database.url or VLSI_WEB_DATABASE_URL")
	}

	db, err := turso.NewDB(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, db); err != nil {
			return err
		}
		version, _, err := migrate.CurrentVersion(ctx, db)
		if err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", version)
		return nil
	}

	targetVersion, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version number: %s", args[0])
	}

	if err := migrate.EnsureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	currentVersion, dirty, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", currentVersion)
	}

	all, err := migrate.LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	switch {
	case targetVersion > currentVersion:
		for _, m := range all {
			if m.Version <= currentVersion || m.Version > targetVersion {
				continue
			}
			if err := migrate.RunMigration(ctx, db, m, true); err != nil {
				return err
			}
		}
	case targetVersion < currentVersion:
		if err := migrate.MigrateDownTo(ctx, db, all, currentVersion, targetVersion); err != nil {
			return err
		}
	default:
		fmt.Println("Already at target version")
		return nil
	}

	fmt.Printf("Migrated to version %d\n", targetVersion)
	return nil
}
