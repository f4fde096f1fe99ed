// Package ports defines the Logger interface for logging abstraction.
package ports

import "strings"

// LogLevel is the minimum severity a logger writes.
type LogLevel int

const (
	// LevelDebug adds per-caption details: fitted sizes, bands, encode sizes.
	LevelDebug LogLevel = iota
	// LevelInfo reports run and batch progress.
	LevelInfo
	// LevelWarn reports recoverable problems such as degenerate layouts.
	LevelWarn
	// LevelError reports failures that stop a render.
	LevelError
	// LevelQuiet writes nothing.
	LevelQuiet
)

var levelNames = [...]string{"debug", "info", "warn", "error", "quiet"}

// String returns the level name used in configuration files.
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// lookupLogLevel matches a level name case-insensitively. "warning" is
// accepted for warn.
func lookupLogLevel(s string) (LogLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn, true
	}
	for i, name := range levelNames {
		if s == name {
			return LogLevel(i), true
		}
	}
	return LevelInfo, false
}

// ParseLogLevel parses a level name. Unknown values map to info.
func ParseLogLevel(s string) LogLevel {
	l, _ := lookupLogLevel(s)
	return l
}

// ValidLogLevel reports whether s names a level. The empty string is
// valid and means info.
func ValidLogLevel(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := lookupLogLevel(s)
	return ok
}

// Logger abstracts logging operations with multi-language support.
// The msg parameter is a message key that may be translated.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a new Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
