// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/memedraw/pkg/ports"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
)

var levelColors = map[ports.LogLevel]string{
	ports.LevelDebug: "\033[90m",
	ports.LevelWarn:  "\033[33m",
	ports.LevelError: "\033[31m",
}

// ConsoleLogger writes translated messages line by line. Debug and info go
// to stdout, warn and error to stderr. Derived component loggers share the
// parent's streams and lock, so lines from concurrent batch workers never
// interleave.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool

	mu     *sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// NewConsole creates a logger on os.Stdout and os.Stderr. Output is colored
// when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	fd := os.Stdout.Fd()
	l := NewWriter(level, os.Stdout, os.Stderr)
	l.color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return l
}

// NewWriter creates an uncolored logger writing to the given streams.
func NewWriter(level ports.LogLevel, stdout, stderr io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		mu:     &sync.Mutex{},
		stdout: stdout,
		stderr: stderr,
	}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log(ports.LevelInfo, msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log(ports.LevelWarn, msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args) }

// WithComponent returns a logger that prefixes lines with the component.
// Nested components are joined with "/", e.g. "caption/fit".
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	if l.component != "" {
		c.component = l.component + "/" + component
	} else {
		c.component = component
	}
	return &c
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}

	var sb strings.Builder
	if l.component != "" {
		if l.color {
			sb.WriteString(colorCyan + "[" + l.component + "]" + colorReset + " ")
		} else {
			sb.WriteString("[" + l.component + "] ")
		}
	}

	text := l10n.F(msg, args...)
	if c, ok := levelColors[level]; ok && l.color {
		text = c + text + colorReset
	}
	sb.WriteString(text)

	w := l.stdout
	if level >= ports.LevelWarn {
		w = l.stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, sb.String())
}

var _ ports.Logger = (*ConsoleLogger)(nil)
