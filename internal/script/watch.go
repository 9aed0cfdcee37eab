package script

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor save bursts.
const DefaultDebounce = 100 * time.Millisecond

// Watch calls run once, then again each time the file at path is written or
// recreated. Events within debounce of each other trigger a single run.
// Errors from run are passed to report and do not stop watching.
// Watch returns nil when ctx is canceled.
func Watch(ctx context.Context, path string, debounce time.Duration, run func() error, report func(error)) error {
	if report == nil {
		report = func(error) {}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	// Editors often replace the file on save, so watch the directory.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	if err := run(); err != nil {
		report(err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absPath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			report(err)

		case <-timer.C:
			if err := run(); err != nil {
				report(err)
			}
		}
	}
}
