package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 50 * time.Millisecond

// WatchFile calls onChange with the contents of path every time it is
// written or replaced, until ctx is done. The parent directory is watched so
// editors that save by renaming a temp file over path are seen too.
// A file that cannot be read after a change is logged and skipped.
func WatchFile(ctx context.Context, path string, logger *slog.Logger, onChange func([]byte)) error {
	if logger == nil {
		logger = slog.Default()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	target := filepath.Clean(path)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()

		var (
			timer   *time.Timer
			pending <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				logger.Debug("watched file changed", "path", path, "op", event.Op.String())
				if timer == nil {
					timer = time.NewTimer(DefaultDebounce)
				} else {
					timer.Reset(DefaultDebounce)
				}
				pending = timer.C

			case <-pending:
				pending = nil
				data, err := os.ReadFile(path)
				if err != nil {
					logger.Warn("failed to reload watched file", "path", path, "error", err)
					continue
				}
				onChange(data)

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("fsnotify error", "error", wErr)
			}
		}
	})
	return nil
}
