//go:build linux

// ABOUTME: Kernel inotify channel: watch registration, teardown, and the
// ABOUTME: blocking reader that forwards each read's records as one batch.
package inotify

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// Watcher pairs an inotify file descriptor with a single registered watch.
// One Watcher exists per process run: created once at startup, released
// exactly once by the shutdown path.
type Watcher struct {
	mu       sync.Mutex
	fd       int
	wd       int // watch descriptor, -1 until AddWatch succeeds
	path     string
	events   chan []Event
	errors   chan error
	done     chan struct{}
	isClosed bool
}

// NewWatcher opens the kernel event channel and starts the reader goroutine.
func NewWatcher() (*Watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("opening inotify channel: %w", err)
	}
	w := &Watcher{
		fd:     fd,
		wd:     -1,
		events: make(chan []Event),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.readEvents()
	return w, nil
}

// AddWatch registers path for the fixed kind set. A Watcher tracks exactly
// one path, so a second registration is an error. No existence pre-check is
// made; a bad path surfaces through the syscall result.
func (w *Watcher) AddWatch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isClosed {
		return fmt.Errorf("inotify: watcher is closed")
	}
	if w.wd >= 0 {
		return fmt.Errorf("inotify: watch already registered for %s", w.path)
	}
	wd, err := unix.InotifyAddWatch(w.fd, path, WatchMask)
	if err != nil {
		return fmt.Errorf("adding watch for %s: %w", path, err)
	}
	w.wd = wd
	w.path = path
	return nil
}

// Events delivers one batch per kernel read, records in kernel order.
func (w *Watcher) Events() <-chan []Event {
	return w.events
}

// Errors delivers the first fatal read or decode failure. After a send on
// this channel the reader has stopped and no further batches arrive.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// RemoveWatch deregisters the watch. The kernel queues IN_IGNORED for the
// descriptor as a side effect, which wakes a blocked read.
func (w *Watcher) RemoveWatch() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.wd < 0 {
		return fmt.Errorf("inotify: no watch registered")
	}
	wd := w.wd
	w.wd = -1
	if _, err := unix.InotifyRmWatch(w.fd, uint32(wd)); err != nil {
		return fmt.Errorf("removing watch for %s: %w", w.path, err)
	}
	return nil
}

// Close releases the event channel descriptor. Idempotent; the first call
// stops the reader goroutine.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	if err := unix.Close(w.fd); err != nil {
		return fmt.Errorf("closing inotify channel: %w", err)
	}
	return nil
}

// readEvents blocks on the kernel descriptor and forwards each successful
// read's decoded records as a single batch. The loop ends on Close, or on
// the first read or decode failure, which is forwarded over Errors.
func (w *Watcher) readEvents() {
	buf := make([]byte, eventBufferSize)
	for {
		n, err := unix.Read(w.fd, buf)
		if w.closed() {
			return
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			w.fail(fmt.Errorf("reading event channel: %w", err))
			return
		}
		if n == 0 {
			w.fail(fmt.Errorf("reading event channel: %w", io.EOF))
			return
		}
		events, err := decodeEvents(buf[:n])
		if err != nil {
			w.fail(err)
			return
		}
		if len(events) == 0 {
			continue
		}
		select {
		case w.events <- events:
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isClosed
}

func (w *Watcher) fail(err error) {
	select {
	case w.errors <- err:
	case <-w.done:
	}
}
