//go:build linux

package inotify

import (
	"strings"

	"golang.org/x/sys/unix"
)

// WatchMask is the fixed set of event kinds every watch registers for.
const WatchMask = unix.IN_CREATE | unix.IN_DELETE | unix.IN_ACCESS |
	unix.IN_CLOSE_WRITE | unix.IN_MODIFY | unix.IN_MOVE_SELF

// Event is one decoded kernel record: the kind bitmask and the optional
// name of the affected entry relative to the watched path.
type Event struct {
	Mask   uint32 // kind bitmask as reported by the kernel
	Cookie uint32 // associates related rename events
	Name   string // empty when the event concerns the watched path itself
}

// Has reports whether every bit of mask is set on the event.
func (e Event) Has(mask uint32) bool {
	return e.Mask&mask == mask
}

var maskNames = []struct {
	mask uint32
	name string
}{
	{unix.IN_CREATE, "CREATE"},
	{unix.IN_DELETE, "DELETE"},
	{unix.IN_ACCESS, "ACCESS"},
	{unix.IN_CLOSE_WRITE, "CLOSE_WRITE"},
	{unix.IN_MODIFY, "MODIFY"},
	{unix.IN_MOVE_SELF, "MOVE_SELF"},
	{unix.IN_IGNORED, "IGNORED"},
	{unix.IN_Q_OVERFLOW, "Q_OVERFLOW"},
}

// String renders the event for debug logging.
func (e Event) String() string {
	var b strings.Builder
	for _, mn := range maskNames {
		if e.Mask&mn.mask == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(mn.name)
	}
	if b.Len() == 0 {
		b.WriteString("UNKNOWN")
	}
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	return b.String()
}
