//go:build linux

package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/hoff-industries/rolexhound/internal/daemon"
	"github.com/hoff-industries/rolexhound/internal/inotify"
	"github.com/hoff-industries/rolexhound/internal/logging"
	"github.com/hoff-industries/rolexhound/internal/notifier"
	"github.com/hoff-industries/rolexhound/internal/version"
)

// watchAndNotify acquires the notification sink and the kernel watch, then
// runs the daemon loop until a termination signal or a fatal read failure.
// Startup failures terminate with their own exit code and no cleanup of
// earlier acquisitions; process exit releases them.
func watchAndNotify(path, title string, out, errOut io.Writer) int {
	logging.Info("Starting %s %s: run=%s path=%s", programTitle, version.Version, uuid.NewString()[:8], path)

	sink, err := notifier.New(programTitle)
	if err != nil {
		fmt.Fprintf(errOut, "Error initializing notification subsystem: %v\n", err)
		return exitCodeNotifyInit
	}

	watcher, err := inotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(errOut, "Error initializing event queue: %v\n", err)
		return exitCodeChannelInit
	}

	if err := watcher.AddWatch(path); err != nil {
		fmt.Fprintf(errOut, "Error adding file to inotify watch: %v\n", err)
		return exitCodeWatchAdd
	}

	// Signal handlers are registered only after setup completes. The
	// handler only cancels the context; the loop performs all release
	// work after observing the cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)
	defer stop()

	fmt.Fprintf(out, "Watching %s\n", path)
	if err := daemon.New(watcher, sink, title, out).Run(ctx); err != nil {
		fmt.Fprintf(errOut, "Error reading from inotify event: %v\n", err)
		return exitCodeRead
	}
	return exitCodeSuccess
}
