package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunInvokesCallbackOnWrite(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, dir, 50*time.Millisecond, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before touching the directory.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("callback was not invoked after file change")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run error = %v", err)
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, dir, 0, func() {})
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	err := Run(context.Background(), filepath.Join(t.TempDir(), "missing"), 0, func() {})
	if err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
