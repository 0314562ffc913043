// Package simlog writes per-run log lines to a file, truncated at the start
// of every run — no cross-run persistence (spec.md §6.5). Every repo in the
// pack that logs at all reaches for the standard library's log package
// rather than a structured logging library, so this ambient concern stays
// on the standard library too (see DESIGN.md).
package simlog

import (
	"fmt"
	"log"
	"os"
)

// Logger wraps a *log.Logger bound to a truncated per-run file.
type Logger struct {
	file *os.File
	l    *log.Logger
}

// Open truncates (or creates) the file at path and returns a Logger writing
// to it with a microsecond-precision timestamp prefix.
func Open(path string) (*Logger, error) {
	f, err := os.Create(path) // os.Create truncates an existing file
	if err != nil {
		return nil, fmt.Errorf("simlog: open %s: %w", path, err)
	}
	return &Logger{file: f, l: log.New(f, "", log.LstdFlags|log.Lmicroseconds)}, nil
}

// Tick logs one tick's summary line.
func (lg *Logger) Tick(tick int, itemsCreated, pickups, deliveries int) {
	lg.l.Printf("tick=%d created=%d pickups=%d deliveries=%d", tick, itemsCreated, pickups, deliveries)
}

// Errorf logs a formatted error line.
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Printf("error: "+format, args...)
}

// Close flushes and closes the underlying file.
func (lg *Logger) Close() error {
	return lg.file.Close()
}
