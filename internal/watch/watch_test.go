package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunFiresAfterChangeBurst(t *testing.T) {
	root := t.TempDir()
	current := filepath.Join(root, "current")
	if err := os.MkdirAll(current, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, root, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before touching anything.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(current, "theme.tmp"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected change callback after filesystem event")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on cancel: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop on context cancel")
	}
}
