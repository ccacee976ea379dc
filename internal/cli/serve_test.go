package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/memory"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func contentYAML(title string) string {
	return `
projects:
  - id: p1
    slug: test-chip
    title: ` + title + `
    category: vlsi
    description: A test chip.
    status: published
    created_at: 2024-01-01
    updated_at: 2024-01-02
`
}

func writeContentFile(t *testing.T, path, title string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contentYAML(title)), 0o644); err != nil {
		t.Fatalf("writing content file: %v", err)
	}
}

func TestBuildStoresDefaultsToSeed(t *testing.T) {
	cfg := config.Default()

	stores, cleanup, err := buildStores(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("buildStores() error = %v", err)
	}
	defer cleanup()

	projects, err := stores.Projects.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) == 0 {
		t.Fatal("seed snapshot has no projects")
	}
}

func TestBuildStoresLoadsContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContentFile(t, path, "Test Chip")

	cfg := config.Default()
	cfg.Content.File = path

	stores, cleanup, err := buildStores(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("buildStores() error = %v", err)
	}
	defer cleanup()

	projects, err := stores.Projects.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Test Chip" {
		t.Errorf("loaded projects = %+v, want single Test Chip", projects)
	}
}

func TestBuildStoresRejectsBadContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("projects: [not a map"), 0o644); err != nil {
		t.Fatalf("writing content file: %v", err)
	}

	cfg := config.Default()
	cfg.Content.File = path

	if _, _, err := buildStores(context.Background(), cfg, discardLogger()); err == nil {
		t.Fatal("buildStores() accepted a malformed content file")
	}
}

func TestWatchContentFileReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	writeContentFile(t, path, "Before")

	snap, err := memory.LoadContentFile(path)
	if err != nil {
		t.Fatalf("LoadContentFile() error = %v", err)
	}
	store := memory.NewStore(snap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := watchContentFile(ctx, discardLogger(), path, store); err != nil {
		t.Fatalf("watchContentFile() error = %v", err)
	}

	writeContentFile(t, path, "After")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		projects, err := store.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(projects) == 1 && projects[0].Title == "After" {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("store was not reloaded after content file change")
}

func TestWatchContentFileKeepsSnapshotOnBadEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	writeContentFile(t, path, "Stable")

	snap, err := memory.LoadContentFile(path)
	if err != nil {
		t.Fatalf("LoadContentFile() error = %v", err)
	}
	store := memory.NewStore(snap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := watchContentFile(ctx, discardLogger(), path, store); err != nil {
		t.Fatalf("watchContentFile() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("projects: [broken"), 0o644); err != nil {
		t.Fatalf("writing content file: %v", err)
	}

	// Give the debounced reload time to fire, then check the old snapshot
	// is still served.
	time.Sleep(3 * reloadDebounce)

	projects, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Stable" {
		t.Errorf("projects after bad edit = %+v, want original snapshot", projects)
	}
}
