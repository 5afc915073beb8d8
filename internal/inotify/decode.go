//go:build linux

// ABOUTME: Decoder for the raw inotify byte stream.
// ABOUTME: Walks variable-stride records with bounds checks at every advance.
package inotify

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// eventBufferSize is the capacity of the buffer filled by each blocking read.
const eventBufferSize = 4096

// headerSize is the fixed leading part of every record: wd, mask, cookie
// and the length of the trailing name field.
const headerSize = unix.SizeofInotifyEvent

// ErrTruncatedRecord reports a record whose framing does not fit inside the
// read buffer. The kernel never produces this; seeing it means the stream
// is corrupt and the read loop must stop.
var ErrTruncatedRecord = errors.New("inotify: truncated event record")

// decodeEvents walks the records in buf, in buffer order. Records are not
// fixed width: each header carries the byte length of its trailing name
// field, and the cursor advances by header size plus that length. Events
// decoded before a framing error are returned alongside the error. Name
// bytes are copied out, so events stay valid after the buffer is reused.
func decodeEvents(buf []byte) ([]Event, error) {
	var events []Event
	for cursor := 0; cursor < len(buf); {
		remaining := len(buf) - cursor
		if remaining < headerSize {
			return events, fmt.Errorf("%w: %d-byte header fragment at offset %d", ErrTruncatedRecord, remaining, cursor)
		}
		header := buf[cursor : cursor+headerSize]
		mask := binary.NativeEndian.Uint32(header[4:8])
		cookie := binary.NativeEndian.Uint32(header[8:12])
		nameLen := binary.NativeEndian.Uint32(header[12:16])
		if nameLen > uint32(remaining-headerSize) {
			return events, fmt.Errorf("%w: name length %d exceeds %d remaining bytes at offset %d", ErrTruncatedRecord, nameLen, remaining-headerSize, cursor)
		}
		nameField := buf[cursor+headerSize : cursor+headerSize+int(nameLen)]
		events = append(events, Event{
			Mask:   mask,
			Cookie: cookie,
			Name:   string(bytes.TrimRight(nameField, "\x00")),
		})
		cursor += headerSize + int(nameLen)
	}
	return events, nil
}
