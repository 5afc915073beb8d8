// Package notifier delivers desktop notifications for watch events.
package notifier

import "sync"

// Urgency is the freedesktop notification priority level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one (title, body, urgency) message for display.
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
}

// Sink displays notifications. A display failure is reported per call and
// never affects later calls; Close releases process-wide resources.
type Sink interface {
	Notify(n Notification) error
	Close() error
}

// MemorySink records notifications in memory. Used by tests.
type MemorySink struct {
	mu            sync.Mutex
	notifications []Notification
	err           error
	closeCalls    int
}

// NewMemorySink returns an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Notify records n and returns the configured error, if any. The
// notification is recorded either way.
func (s *MemorySink) Notify(n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return s.err
}

// Close counts invocations so tests can assert teardown happened once.
func (s *MemorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCalls++
	return nil
}

// Notifications returns a copy of everything recorded so far.
func (s *MemorySink) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// SetError makes subsequent Notify calls return err.
func (s *MemorySink) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// CloseCalls reports how many times Close ran.
func (s *MemorySink) CloseCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCalls
}
