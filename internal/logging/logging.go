// ABOUTME: Leveled printf-style logging for the watch daemon.
// ABOUTME: Writes [LEVEL]-prefixed lines to stderr; debug output is opt-in.
package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	logger  = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
	debugOn bool
)

// SetDebug enables or disables Debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugOn = enabled
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Debug logs a message only when debug output is enabled.
func Debug(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !debugOn {
		return
	}
	logger.Printf("[DEBUG] "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("[INFO] "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("[WARN] "+format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("[ERROR] "+format, args...)
}
