package simlog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvlath-sim/dispatchgrid/simlog"
)

func TestOpen_TruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("stale content from a previous run\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lg, err := simlog.Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lg.Tick(0, 1, 0, 0)
	if err := lg.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Fatal("expected the previous run's content to be truncated")
	}
	if !strings.Contains(string(data), "tick=0") {
		t.Fatalf("expected the tick line to be written, got %q", string(data))
	}
}
