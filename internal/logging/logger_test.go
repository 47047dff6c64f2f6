package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLoggerConsoleFormat(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(Options{Level: LevelInfo, Console: &console})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer logger.Close()

	logger.Info("hello from the run")

	// e.g. "2026-08-28 10:11:12.123 - INFO: hello from the run"
	line := console.String()
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} - INFO: hello from the run\n$`)
	if !pattern.MatchString(line) {
		t.Errorf("console line %q does not match the short format", line)
	}
}

func TestLoggerFileFormatIncludesSource(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "script_runner.log")

	logger, err := New(Options{
		FilePath: logPath,
		Level:    LevelInfo,
		Console:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Error("something broke")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, " - ERROR - ") {
		t.Errorf("file line %q missing level segment", line)
	}
	// The source column must point at this test, not at the logging package.
	if !strings.Contains(line, "logger_test.go:") {
		t.Errorf("file line %q missing caller source location", line)
	}
	if !strings.Contains(line, "something broke") {
		t.Errorf("file line %q missing message", line)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(Options{Level: LevelWarn, Console: &console})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer logger.Close()

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("loud enough")
	logger.Error("definitely loud")

	out := console.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("sub-threshold entries were logged:\n%s", out)
	}
	if !strings.Contains(out, "loud enough") || !strings.Contains(out, "definitely loud") {
		t.Errorf("expected WARN and ERROR entries:\n%s", out)
	}
}

func TestLoggerWithAttrs(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(Options{Level: LevelInfo, Console: &console})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer logger.Close()

	logger.With("script", "a-1.py").Info("attempt started", "attempt", 2)

	out := console.String()
	if !strings.Contains(out, "script=a-1.py") || !strings.Contains(out, "attempt=2") {
		t.Errorf("attrs missing from line: %q", out)
	}
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(Options{Level: "CHATTY", Console: &console})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer logger.Close()

	logger.Debug("hidden")
	logger.Info("visible")

	out := console.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Errorf("unexpected filtering for fallback level:\n%s", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	// Must not panic and must not write anywhere observable.
	logger := Nop()
	logger.Info("into the void")
	logger.Error("also into the void")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on Nop logger: %v", err)
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range ValidLevels() {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false", level)
		}
	}
	if IsValidLevel("LOUD") {
		t.Error(`IsValidLevel("LOUD") = true`)
	}
}
