package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"convcheck/internal/config"
	"convcheck/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "convcheck.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("listing complete", logging.Args(logging.Int(logging.FieldCount, 3))...)

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "INFO listing complete count=3") {
		t.Fatalf("unexpected log content %q", content)
	}
}

func TestNewFromNilConfig(t *testing.T) {
	logger, err := logging.NewFromConfig(nil)
	if err != nil {
		t.Fatalf("NewFromConfig(nil) returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "info", "console")
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "audit")
	logger.Info("listed directory",
		logging.String(logging.FieldDir, "/photos/my album"),
		logging.Error(errors.New("boom")),
	)

	line := buf.String()
	if !strings.Contains(line, " INFO audit: listed directory") {
		t.Fatalf("missing component prefix in %q", line)
	}
	if !strings.Contains(line, `dir="/photos/my album"`) {
		t.Fatalf("expected quoted dir value in %q", line)
	}
	if !strings.Contains(line, "error=boom") {
		t.Fatalf("expected error field in %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "debug", "console")
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger.Debug("scan detail")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "warn", "console")
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line leaked at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN shown") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestGroupedAttributesAreFlattened(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "info", "console")
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	logger.WithGroup("counts").Info("summary", "missing", 2)
	if !strings.Contains(buf.String(), "counts.missing=2") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestJSONLoggerRenamesKeysAndCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "info", "json")
	if err != nil {
		t.Fatalf("NewWithWriter returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Info("reconciled")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	for _, key := range []string{"ts", "level", "msg", "run_id"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("expected key %q in %v", key, payload)
		}
	}
	if payload["level"] != "info" || payload["run_id"] != "run-123" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx := logging.WithRunID(context.Background(), " abc ")
	id, ok := logging.RunIDFromContext(ctx)
	if !ok || id != "abc" {
		t.Fatalf("unexpected run id %q (%v)", id, ok)
	}
	if got := logging.WithContext(context.Background(), nil); got == nil {
		t.Fatal("expected nop logger for nil input")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := logging.NewWithWriter(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
