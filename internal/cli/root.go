// Package cli wires the configuration, stores, and web server into the
// vlsi-web command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vlsi-web",
	Short: "Research lab brochure site and admin panel",
	Long: `vlsi-web serves a university research lab's public site and the
admin panel behind it.

The site runs from an in-memory content snapshot by default and from a
libsql database when one is configured.`,
}

var configPath string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("VLSI_WEB_CONFIG")
	}
	return config.Load(path)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
