package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/memory"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/storage"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/turso"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/auth"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/config"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/migrate"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site and admin panel",
	Long: `Start the web server.

Examples:
  vlsi-web serve              # Start on the configured port (default 8080)
  vlsi-web serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	logger := newLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, cleanup, err := buildStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	uploads, err := storage.NewMediaStorage(cfg.Media.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize media storage: %w", err)
	}

	gate := auth.NewGate(auth.Credentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	sessions := auth.NewSessionStore(cfg.Admin.SessionTTL)

	server, err := web.NewServer(cfg.Server.Port, logger, stores, uploads, uploads.Dir(), gate, sessions)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return server.Start(ctx)
}

// buildStores picks the content backend. A configured database URL selects the
// libsql repositories; otherwise the site runs from an in-memory snapshot,
// loaded from the content file when one is set.
func buildStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (web.Stores, func(), error) {
	if cfg.Database.URL != "" {
		db, err := turso.NewDB(cfg.Database.URL, cfg.Database.AuthToken)
		if err != nil {
			return web.Stores{}, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrate.RunAll(ctx, db); err != nil {
			db.Close()
			return web.Stores{}, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if err := turso.Seed(ctx, db, seedData()); err != nil {
			db.Close()
			return web.Stores{}, nil, fmt.Errorf("failed to seed database: %w", err)
		}

		repos := turso.NewRepositories(db)
		stores := web.Stores{
			Projects: repos.Projects,
			Team:     repos.Team,
			Media:    repos.Media,
			Settings: repos.Settings,
		}
		return stores, func() { db.Close() }, nil
	}

	snap := memory.SeedSnapshot()
	if cfg.Content.File != "" {
		loaded, err := memory.LoadContentFile(cfg.Content.File)
		if err != nil {
			return web.Stores{}, nil, fmt.Errorf("failed to load content file: %w", err)
		}
		snap = loaded
	}

	store := memory.NewStore(snap)
	if cfg.Content.File != "" && cfg.Content.Watch {
		if err := watchContentFile(ctx, logger, cfg.Content.File, store); err != nil {
			return web.Stores{}, nil, fmt.Errorf("failed to watch content file: %w", err)
		}
	}

	stores := web.Stores{
		Projects: store,
		Team:     store.Team(),
		Media:    store.MediaLibrary(),
		Settings: store.Settings(),
	}
	return stores, func() {}, nil
}

func seedData() turso.SeedData {
	snap := memory.SeedSnapshot()
	return turso.SeedData{
		Projects:       snap.Projects,
		Members:        snap.Members,
		MemberProjects: snap.MemberProjects,
		Assets:         snap.Assets,
		Settings:       snap.Settings,
	}
}
