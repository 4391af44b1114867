package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

var (
	debugEnabled atomic.Bool
	std          = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	SetDebug(isTruthy(os.Getenv("PACKLIST_DEBUG")))
}

// SetOutput redirects all log output, e.g. to a file while the TUI owns the terminal.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	std.SetOutput(w)
}

// SetDebug toggles Debug output.
func SetDebug(on bool) { debugEnabled.Store(on) }

// Info logs an informational message (always shown)
func Info(subsystem, format string, args ...any) {
	std.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

// Debug logs a debug message (only shown if debug is on)
func Debug(subsystem, format string, args ...any) {
	if debugEnabled.Load() {
		std.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
	}
}

// Truncate truncates a string to maxLen and adds ellipsis
func Truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
