//go:build linux

// Package classify maps an event's kind bitmask to its notification message.
package classify

import "golang.org/x/sys/unix"

// messages is the fixed priority order. Classification walks the whole
// table and keeps the last matching entry, so a record carrying several
// flags yields at most one message: the final match in this order.
var messages = []struct {
	mask uint32
	body string
}{
	{unix.IN_CREATE, "File created."},
	{unix.IN_DELETE, "File deleted."},
	{unix.IN_ACCESS, "File accessed."},
	{unix.IN_CLOSE_WRITE, "File written and closed."},
	{unix.IN_MODIFY, "File modified."},
	{unix.IN_MOVE_SELF, "File moved."},
}

// Message returns the notification body for mask. The second return is
// false when no recognized flag is set; such records produce no
// notification at all.
func Message(mask uint32) (string, bool) {
	body := ""
	matched := false
	for _, m := range messages {
		if mask&m.mask != 0 {
			body = m.body
			matched = true
		}
	}
	return body, matched
}
