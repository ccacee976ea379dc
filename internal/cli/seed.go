package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/memory"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/turso"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/migrate"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the configured database with demo content",
	Long: `Migrate the configured database and insert the demo catalog if it
is empty. With --content, the catalog is read from a YAML content file
instead of the built-in fixture.`,
	RunE: runSeed,
}

var seedContentFile string

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedContentFile, "content", "", "Content file to seed from")
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	if err := migrate.RunAll(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	data := seedData()
	if seedContentFile != "" {
		snap, err := memory.LoadContentFile(seedContentFile)
		if err != nil {
			return fmt.Errorf("failed to load content file: %w", err)
		}
		data = turso.SeedData{
			Projects:       snap.Projects,
			Members:        snap.Members,
			MemberProjects: snap.MemberProjects,
			Assets:         snap.Assets,
			Settings:       snap.Settings,
		}
	}

	if err := turso.Seed(ctx, db, data); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Println("Database seeded")
	return nil
}
