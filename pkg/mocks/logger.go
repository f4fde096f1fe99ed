package mocks

import (
	"fmt"
	"sync"

	"github.com/user/memedraw/pkg/ports"
)

// Logger is a ports.Logger that keeps formatted warnings. Components share
// the parent's record.
type Logger struct {
	mu    sync.Mutex
	warns []string
}

// NewLogger creates an empty Logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, args ...interface{}) {}
func (l *Logger) Info(msg string, args ...interface{})  {}
func (l *Logger) Error(msg string, args ...interface{}) {}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(msg, args...))
}

func (l *Logger) WithComponent(component string) ports.Logger {
	return l
}

// Warnings returns the warnings logged so far (for test verification).
func (l *Logger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

var _ ports.Logger = (*Logger)(nil)
