//go:build linux

// ABOUTME: The watch daemon loop: consume event batches, classify records,
// ABOUTME: dispatch notifications, and release resources exactly once on shutdown.
package daemon

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/hoff-industries/rolexhound/internal/classify"
	"github.com/hoff-industries/rolexhound/internal/inotify"
	"github.com/hoff-industries/rolexhound/internal/logging"
	"github.com/hoff-industries/rolexhound/internal/notifier"
)

// EventSource is the watch side consumed by the loop. *inotify.Watcher
// implements it; tests substitute a scripted source.
type EventSource interface {
	Events() <-chan []inotify.Event
	Errors() <-chan error
	RemoveWatch() error
	Close() error
}

// ReadError is the fatal runtime failure of the event channel. The loop
// returns it without running the release sequence; teardown is left to
// process exit.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("event channel failed: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Daemon runs the watch loop for one path.
type Daemon struct {
	source   EventSource
	sink     notifier.Sink
	title    string
	out      io.Writer
	mu       sync.Mutex
	released bool
}

// New assembles a daemon. title is the display label (the watched path's
// base name); out receives the human-readable status lines.
func New(source EventSource, sink notifier.Sink, title string, out io.Writer) *Daemon {
	return &Daemon{
		source: source,
		sink:   sink,
		title:  title,
		out:    out,
	}
}

// Run executes the watch loop until ctx is cancelled or the event channel
// fails. Cancellation runs the release sequence and returns nil. A channel
// failure returns *ReadError immediately, skipping the release sequence.
func (d *Daemon) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(d.out, "Waiting for event...")
		select {
		case <-ctx.Done():
			fmt.Fprintln(d.out, "Exit signal received, closing watch descriptors...")
			d.release()
			return nil
		case err := <-d.source.Errors():
			return &ReadError{Err: err}
		case batch := <-d.source.Events():
			for _, ev := range batch {
				d.handle(ev)
			}
		}
	}
}

// handle classifies one record and dispatches its notification. Display
// failures are logged and skipped; they never stop the loop.
func (d *Daemon) handle(ev inotify.Event) {
	if ev.Has(unix.IN_Q_OVERFLOW) {
		logging.Warn("Kernel event queue overflowed, events were dropped")
		return
	}
	if ev.Has(unix.IN_IGNORED) {
		logging.Debug("Watch removed by the kernel")
		return
	}
	body, ok := classify.Message(ev.Mask)
	if !ok {
		return
	}
	logging.Debug("Dispatching notification: %s", ev)
	err := d.sink.Notify(notifier.Notification{
		Title:   d.title,
		Body:    body,
		Urgency: notifier.UrgencyCritical,
	})
	if err != nil {
		logging.Error("Failed to display notification: %v", err)
	}
}

// release removes the watch, closes the event channel, and tears down the
// notification sink. Runs at most once per process; a watch-removal
// failure is logged and never stops the remaining steps.
func (d *Daemon) release() {
	d.mu.Lock()
	if d.released {
		d.mu.Unlock()
		return
	}
	d.released = true
	d.mu.Unlock()

	if err := d.source.RemoveWatch(); err != nil {
		logging.Warn("Error removing file from inotify watch: %v", err)
	}
	if err := d.source.Close(); err != nil {
		logging.Warn("Error closing event channel: %v", err)
	}
	if err := d.sink.Close(); err != nil {
		logging.Warn("Error releasing notification sink: %v", err)
	}
}
