package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/giangnmt98/ExtractFeature/internal/logger"
)

func TestNew(t *testing.T) {
	if logger.New(false) == nil {
		t.Fatal("New should return a logger")
	}
	if logger.New(true) == nil {
		t.Fatal("New(debug) should return a logger")
	}
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	log := logger.NewWithWriter(&buf, slog.LevelInfo)
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message should be suppressed at info level, got %q", buf.String())
	}

	buf.Reset()
	log = logger.NewWithWriter(&buf, slog.LevelDebug)
	log.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should be emitted at debug level")
	}
}

func TestJSONLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo)

	log.Info("test message", "key", "value")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("expected msg 'test message', got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("expected key 'value', got %v", logEntry["key"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.WithComponent(logger.NewWithWriter(&buf, slog.LevelInfo), "loader")

	log.Info("loading")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}
	if logEntry["component"] != "loader" {
		t.Errorf("expected component 'loader', got %v", logEntry["component"])
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	log := logger.WithRun(logger.NewWithWriter(&buf, slog.LevelInfo), "run-123")

	log.Info("stage started")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}
	if logEntry["run_id"] != "run-123" {
		t.Errorf("expected run_id 'run-123', got %v", logEntry["run_id"])
	}
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	if log == nil {
		t.Fatal("Discard should return a logger")
	}
	log.Info("dropped")
	log.Error("dropped too")
}
