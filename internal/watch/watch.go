// Package watch re-runs a callback whenever a skill directory changes.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of filesystem events (editors often
// write, chmod, and rename in quick succession) into one callback.
const DefaultDebounce = 200 * time.Millisecond

// relevantOps are the event kinds that can change validation results.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Run watches dir and invokes fn after each debounced batch of changes.
// It blocks until ctx is cancelled. debounce <= 0 selects DefaultDebounce.
func Run(ctx context.Context, dir string, debounce time.Duration, fn func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	timer := time.NewTimer(debounce)
	stopTimer(timer)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			log.Debug("fs event", "op", event.Op.String(), "path", event.Name)
			stopTimer(timer)
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-timer.C:
			fn()
		}
	}
}

// stopTimer halts the timer and drains a pending tick so a later Reset
// cannot deliver a stale fire.
func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
