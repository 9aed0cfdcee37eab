package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"Info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "strand"})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l, &buf
}

func TestLogger_Line(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithFields(map[string]any{"variant": "link", "component": "bench"}).Info("took %dms", 12)

	want := "2024-01-02T03:04:05.006 [INFO] strand: took 12ms {component=bench, variant=link}\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q\nwant   %q", got, want)
	}
}

func TestLogger_LogLevel_Filtering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "[DEBUG]") || strings.Contains(output, "[INFO]") {
		t.Errorf("expected DEBUG and INFO to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected WARN and ERROR in output, got: %s", output)
	}
}

func TestLogger_NoArgsKeepsPercent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)
	logger.Info("100% done")
	if !strings.Contains(buf.String(), "100% done") {
		t.Errorf("expected literal message, got: %s", buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	child := logger.WithComponent("script").WithField("path", "a.lua")
	logger.Info("parent")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if strings.Contains(lines[0], "{") {
		t.Errorf("parent should have no fields: %s", lines[0])
	}
	if !strings.HasSuffix(lines[1], "{component=script, path=a.lua}") {
		t.Errorf("child fields missing: %s", lines[1])
	}
}

func TestLogger_SetLevelAndOutput(t *testing.T) {
	logger, buf1 := newBufferLogger(LogLevelError)

	logger.Info("should not appear")
	if buf1.Len() != 0 {
		t.Error("expected no output at error level")
	}

	var buf2 bytes.Buffer
	logger.SetLevel(LogLevelInfo)
	logger.SetOutput(&buf2)
	logger.Info("should appear")
	if buf1.Len() != 0 || buf2.Len() == 0 {
		t.Error("expected output only in the new writer")
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic or write anywhere.
	NullLogger.Error("discarded %d", 1)
	NullLogger.WithComponent("x").Info("discarded")
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Prefix != "strand" || cfg.Level != LogLevelInfo || cfg.Output == nil {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}
