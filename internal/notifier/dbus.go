// ABOUTME: Notification sink over the org.freedesktop.Notifications D-Bus service.
// ABOUTME: Falls back to beeep for a single best-effort retry when a send fails.
package notifier

import (
	"fmt"
	"sync"
	"time"

	"github.com/esiqveland/notify"
	"github.com/gen2brain/beeep"
	"github.com/godbus/dbus/v5"

	"github.com/hoff-industries/rolexhound/internal/logging"
)

// defaultExpireTimeout bounds how long a notification stays on screen.
const defaultExpireTimeout = 30 * time.Second

// appIcon is the stock freedesktop icon attached to every notification.
const appIcon = "dialog-information"

// DBusSink delivers notifications through the session bus notification
// service. One sink exists per process run; Close releases the connection.
type DBusSink struct {
	appName  string
	conn     *dbus.Conn
	notifier notify.Notifier
	mu       sync.Mutex
	closing  bool
}

// New connects to the session bus and prepares the notification service
// proxy. A failure here means the notification subsystem is unavailable
// for the whole process run.
func New(appName string) (*DBusSink, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	n, err := notify.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing notification service: %w", err)
	}
	return &DBusSink{appName: appName, conn: conn, notifier: n}, nil
}

// Notify displays one notification. On a D-Bus send failure it makes one
// best-effort beeep attempt before reporting the original error.
func (s *DBusSink) Notify(n Notification) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return fmt.Errorf("notifier: sink is closed")
	}
	s.mu.Unlock()

	id, err := s.notifier.SendNotification(notify.Notification{
		AppName:       s.appName,
		AppIcon:       appIcon,
		Summary:       n.Title,
		Body:          n.Body,
		Hints:         urgencyHints(n.Urgency),
		ExpireTimeout: defaultExpireTimeout,
	})
	if err == nil {
		logging.Debug("Notification sent: id=%d title=%s", id, n.Title)
		return nil
	}

	logging.Warn("D-Bus notification failed, falling back to beeep: %v", err)
	if beeepErr := s.sendWithBeeep(n); beeepErr == nil {
		logging.Debug("Notification sent via beeep: title=%s", n.Title)
		return nil
	}
	return fmt.Errorf("sending notification: %w", err)
}

// Close releases the notification service proxy and the bus connection.
// Idempotent.
func (s *DBusSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return nil
	}
	s.closing = true
	if err := s.notifier.Close(); err != nil {
		logging.Warn("Failed to close notification service proxy: %v", err)
	}
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("closing session bus: %w", err)
	}
	return nil
}

func (s *DBusSink) sendWithBeeep(n Notification) error {
	// Unique AppName prevents notification grouping/replacement on Linux.
	originalAppName := beeep.AppName
	beeep.AppName = s.appName
	defer func() {
		beeep.AppName = originalAppName
	}()
	return beeep.Notify(n.Title, n.Body, appIcon)
}

// urgencyHints builds the freedesktop urgency hint map for a notification.
func urgencyHints(u Urgency) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(u)),
	}
}
