package host

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDataset watches the demo dataset file and hot-reloads it into
// the demo client until ctx is cancelled. It calls cb (if non-nil)
// after each successful reload.
//
// The parent directory is watched rather than the file itself, so
// editors that replace the file via rename keep triggering events.
// Events are debounced to coalesce write bursts.
func WatchDataset(ctx context.Context, client *DemoClient, path string, logger *slog.Logger, cb func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("dataset watcher: started", slog.String("path", path))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("dataset watcher: stopped")
			return nil

		case <-reloadCh:
			if err := client.LoadDataset(path); err != nil {
				logger.Warn("dataset watcher: reload failed", slog.String("error", err.Error()))
				continue
			}
			logger.Info("dataset watcher: reloaded", slog.String("path", path))
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("dataset watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
