package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/memedraw/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelWarn, &out, &errOut)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "warn message") || !strings.Contains(got, "error message") {
		t.Errorf("stderr missing warn/error: %q", got)
	}
}

func TestConsoleLogger_StreamSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &errOut)

	log.Debug("d")
	log.Info("i %d", 1)
	log.Error("e")

	if out.String() != "d\ni 1\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errOut.String() != "e\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut).WithComponent("caption")

	log.Info("hello")

	if out.String() != "[caption] hello\n" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &errOut)

	log.Error("nothing")
	if out.Len()+errOut.Len() != 0 {
		t.Error("quiet logger should not write")
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("x")
	if log.WithComponent("y") != log {
		t.Error("WithComponent should return the same logger")
	}
}

func TestConsoleLogger_NestedComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &errOut).
		WithComponent("caption").
		WithComponent("fit")

	log.Warn("too wide")

	if errOut.String() != "[caption/fit] too wide\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}
