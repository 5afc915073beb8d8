//go:build !linux

package main

import (
	"fmt"
	"io"
)

// watchAndNotify requires Linux inotify support. Other platforms cannot
// open the event channel at all, so this reports the channel init failure.
func watchAndNotify(path, title string, out, errOut io.Writer) int {
	fmt.Fprintf(errOut, "%s requires Linux (inotify) support\n", programTitle)
	return exitCodeChannelInit
}
