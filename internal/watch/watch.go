// Package watch re-runs theme synchronization when the Omarchy theme changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/navitone/themesync/internal/logging"
)

// Debounce is how long after the last filesystem event the callback fires.
// Theme switches touch several files in quick succession.
const Debounce = 250 * time.Millisecond

// Run watches the Omarchy current-theme link under root and invokes onChange
// after each change burst, until ctx is cancelled. Paths that do not exist
// yet are skipped; the watch still covers the ones that do.
func Run(ctx context.Context, root string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	logger := logging.Component("watch")

	current := filepath.Join(root, "current")
	for _, path := range []string{current, filepath.Join(current, "theme")} {
		if err := watcher.Add(path); err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("watch path unavailable")
		}
	}

	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events:
			logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("theme change detected")
			timer.Reset(Debounce)
		case err := <-watcher.Errors:
			logger.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			onChange()
		}
	}
}
