// ABOUTME: rolexhound watches one filesystem path via kernel inotify and
// ABOUTME: shows a desktop notification for every reported event.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hoff-industries/rolexhound/internal/logging"
	"github.com/hoff-industries/rolexhound/internal/version"
)

// programTitle doubles as the notification app name.
const programTitle = "rolexhound"

// watchFunc acquires the watch resources and runs the daemon loop. Split
// out so argument handling is testable without touching the kernel.
type watchFunc func(path, title string, out, errOut io.Writer) int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	return runWithWatch(args, out, errOut, watchAndNotify)
}

// runWithWatch validates arguments and derives the display title before
// any resource acquisition, then hands off to watch.
func runWithWatch(args []string, out, errOut io.Writer, watch watchFunc) int {
	cfg, err := parseArgs(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitCodeSuccess
		}
		return exitCodeUsage
	}
	if cfg.ShowVersion {
		fmt.Fprintf(out, "%s %s\n", programTitle, version.Version)
		return exitCodeSuccess
	}

	logging.SetDebug(cfg.Debug)

	title := baseName(cfg.Path)
	if title == "" {
		fmt.Fprintln(errOut, "Error getting base file path!")
		return exitCodeEmptyBaseName
	}

	return watch(cfg.Path, title, out, errOut)
}
