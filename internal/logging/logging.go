// Package logging provides category file logging for the SkyLander TUI.
// The alternate screen owns stdout, so screen-side diagnostics go to
// ~/.skylander/logs/<category>.log instead. Nothing is written unless
// debug mode is enabled at Initialize time.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category names one log stream per subsystem.
type Category string

const (
	CategorySession Category = "session" // session store reads/writes
	CategoryAPI     Category = "api"     // REST calls and their outcomes
	CategoryGeocode Category = "geocode" // Nominatim lookups
	CategoryUI      Category = "ui"      // screen transitions, alerts
	CategoryMedia   Category = "media"   // capture probing and uploads
)

var (
	mu      sync.Mutex
	loggers = make(map[Category]*log.Logger)
	files   []*os.File
	logsDir string
	enabled bool
	runID   string
)

// Initialize wires the log directory and assigns this run's correlation
// id. With debug=false every logging call is a no-op.
func Initialize(dir string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = debug
	runID = uuid.NewString()[:8]
	if !enabled {
		return nil
	}
	logsDir = filepath.Join(dir, "logs")
	return os.MkdirAll(logsDir, 0755)
}

// RunID returns the short correlation id stamped on every entry.
func RunID() string {
	mu.Lock()
	defer mu.Unlock()
	return runID
}

func get(cat Category) *log.Logger {
	if l, ok := loggers[cat]; ok {
		return l
	}
	path := filepath.Join(logsDir, string(cat)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// Fall back to a discarded logger rather than failing the
		// caller; stderr is off limits while the alternate screen is up.
		l := log.New(io.Discard, "", 0)
		loggers[cat] = l
		return l
	}
	files = append(files, f)
	l := log.New(f, "", 0)
	loggers[cat] = l
	return l
}

func write(cat Category, level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	get(cat).Printf("%s [%s] %s %s", time.Now().Format(time.RFC3339), level, runID, msg)
}

// Info logs an informational entry to the category stream.
func Info(cat Category, format string, args ...interface{}) {
	write(cat, "INFO", format, args...)
}

// Warn logs a warning entry to the category stream.
func Warn(cat Category, format string, args ...interface{}) {
	write(cat, "WARN", format, args...)
}

// Error logs an error entry to the category stream.
func Error(cat Category, format string, args ...interface{}) {
	write(cat, "ERROR", format, args...)
}

// Close closes all open log files.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	for _, f := range files {
		_ = f.Close()
	}
	files = nil
	loggers = make(map[Category]*log.Logger)
}
