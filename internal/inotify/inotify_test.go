//go:build linux

package inotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// waitForEvent drains batches until pred matches an event or the timeout
// elapses.
func waitForEvent(t *testing.T, w *Watcher, pred func(Event) bool) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case batch := <-w.Events():
			for _, ev := range batch {
				if pred(ev) {
					return ev
				}
			}
		case err := <-w.Errors():
			t.Fatalf("unexpected watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

func newTestWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	if err := w.AddWatch(path); err != nil {
		t.Fatalf("AddWatch(%s): %v", path, err)
	}
	return w
}

func TestWatcherDeliversCreateInDirectory(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "fresh.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ev := waitForEvent(t, w, func(ev Event) bool { return ev.Has(unix.IN_CREATE) })
	if ev.Name != "fresh.txt" {
		t.Errorf("expected name %q, got %q", "fresh.txt", ev.Name)
	}
}

func TestWatcherDeliversWriteCloseOnFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("seed"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	w := newTestWatcher(t, path)

	if err := os.WriteFile(path, []byte("update"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ev := waitForEvent(t, w, func(ev Event) bool { return ev.Has(unix.IN_CLOSE_WRITE) })
	if ev.Name != "" {
		t.Errorf("expected empty name for a file watch, got %q", ev.Name)
	}
}

func TestWatcherBatchPreservesKernelOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ordered.txt")
	if err := os.WriteFile(path, []byte("seed"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	w := newTestWatcher(t, path)

	// A write then close queues MODIFY before CLOSE_WRITE.
	if err := os.WriteFile(path, []byte("update"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var seen []uint32
	deadline := time.After(5 * time.Second)
	for len(seen) == 0 || seen[len(seen)-1]&unix.IN_CLOSE_WRITE == 0 {
		select {
		case batch := <-w.Events():
			for _, ev := range batch {
				if ev.Has(unix.IN_MODIFY) || ev.Has(unix.IN_CLOSE_WRITE) {
					seen = append(seen, ev.Mask)
				}
			}
		case <-deadline:
			t.Fatal("timed out waiting for modify and close-write")
		}
	}
	if seen[0]&unix.IN_MODIFY == 0 {
		t.Errorf("expected MODIFY before CLOSE_WRITE, got %#x first", seen[0])
	}
}

func TestAddWatchRejectsSecondRegistration(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	if err := w.AddWatch(dir); err == nil {
		t.Fatal("expected error on second AddWatch")
	}
}

func TestAddWatchMissingPath(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.AddWatch(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestRemoveWatchWithoutRegistration(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := w.RemoveWatch(); err == nil {
		t.Fatal("expected error when no watch is registered")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestRemoveThenCloseAfterWatching(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	if err := w.RemoveWatch(); err != nil {
		t.Fatalf("RemoveWatch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
