package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledLoggingWritesNothing(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, false); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	Info(CategoryUI, "invisible %d", 1)
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Errorf("disabled logging created the log directory: %v", err)
	}
}

func TestEntriesCarryRunID(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, true); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	Info(CategoryAPI, "POST %s", "/api/login")
	data, err := os.ReadFile(filepath.Join(dir, "logs", "api.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, RunID()) {
		t.Errorf("entry missing run id %q: %q", RunID(), line)
	}
	if !strings.Contains(line, "POST /api/login") {
		t.Errorf("entry missing message: %q", line)
	}
}

func TestUnwritableLogDirFallsBackToDiscard(t *testing.T) {
	// An unopenable log path must neither fail the caller nor leak
	// entries to stderr under the alternate screen.
	dir := t.TempDir()
	if err := Initialize(dir, true); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer Close()

	// Occupy the category's file path with a directory so OpenFile fails.
	if err := os.Mkdir(filepath.Join(dir, "logs", "media.log"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	mu.Lock()
	l := get(CategoryMedia)
	mu.Unlock()
	if l.Writer() != io.Discard {
		t.Errorf("fallback logger writes to %T, want io.Discard", l.Writer())
	}

	Info(CategoryMedia, "dropped on the floor")
}
