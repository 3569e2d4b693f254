// Package logging writes errors and optional JSON trace entries to a single
// append-only log file. The rotor runs full screen, so nothing is ever logged
// to the terminal.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "formatting-rotor.log"

type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
	seq   uint64
}

var std = &sink{path: DefaultPath()}

// DefaultPath returns the log location used when none is configured: a file in
// the user's cache directory, or the working directory when that is unknown.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return defaultLogFile
	}
	return filepath.Join(dir, "formatting-rotor", defaultLogFile)
}

// Error appends err to the log file.
func Error(err error) {
	if err == nil {
		return
	}
	std.write(func(f *os.File) error {
		log.New(f, "", log.LstdFlags).Println(err)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	std.mu.Lock()
	std.trace = enabled
	std.mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.trace
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Seq     uint64      `json:"seq"`
	PID     int         `json:"pid"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line for event when tracing is enabled. Entries carry
// a per-process sequence number so runs sharing a log file can be told apart.
func Trace(event string, payload interface{}) {
	std.mu.Lock()
	if !std.trace {
		std.mu.Unlock()
		return
	}
	std.seq++
	entry := traceEntry{
		Time:    time.Now().UTC(),
		Seq:     std.seq,
		PID:     os.Getpid(),
		Event:   event,
		Payload: payload,
	}
	std.mu.Unlock()

	std.write(func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

// Configure sets the log destination. An empty path restores DefaultPath.
func Configure(path string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	std.path = path
}

// Path returns the current log destination.
func Path() string {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.path
}

func (s *sink) write(fn func(*os.File) error) {
	path := Path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			return
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintf(os.Stderr, "log write failed: %v\n", err)
	}
}
