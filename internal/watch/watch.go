// Package watch reruns a function when documentation files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 200 * time.Millisecond

// Options configures Run.
type Options struct {
	// Dirs are watched non-recursively; missing directories are skipped.
	Dirs []string
	// Match selects the file names that trigger a rerun.
	Match func(name string) bool
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	Logger   *slog.Logger
}

// Run watches opts.Dirs and calls fn once per burst of matching events until
// ctx is done. fn always runs on the calling goroutine, so reruns never overlap.
func Run(ctx context.Context, opts Options, fn func()) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Match == nil {
		opts.Match = func(string) bool { return true }
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, dir := range opts.Dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			opts.Logger.Debug("skipping missing watch directory", "dir", dir)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no directories to watch")
	}
	opts.Logger.Debug("watching", "dirs", watched)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !opts.Match(filepath.Base(event.Name)) {
				continue
			}
			opts.Logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				timer.Reset(opts.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("watcher error", "error", err)
		}
	}
}
