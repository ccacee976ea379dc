package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/memory"
)

const reloadDebounce = 500 * time.Millisecond

// watchContentFile reloads the store when the content file changes. Editors
// often replace files via rename, so the parent directory is watched and
// events are filtered by name. A broken edit logs an error and the previous
// snapshot stays live.
func watchContentFile(ctx context.Context, logger *slog.Logger, path string, store *memory.Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		reload := func() {
			snap, err := memory.LoadContentFile(abs)
			if err != nil {
				logger.Error("content reload failed", "path", abs, "error", err)
				return
			}
			store.Reload(snap)
			logger.Info("content reloaded", "path", abs, "projects", len(snap.Projects))
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				// Debounce bursts of write events from a single save.
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("content watcher error", "error", err)
			}
		}
	}()

	logger.Info("watching content file", "path", abs)
	return nil
}
