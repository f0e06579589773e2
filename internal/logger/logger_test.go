package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)
	defer InitLoggerWithWriter(DefaultConfig(), &bytes.Buffer{})

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "text", ServiceName: "svc"}, &buf)
	defer InitLoggerWithWriter(DefaultConfig(), &bytes.Buffer{})

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("Expected warn and error lines, got %q", out)
	}
	if !strings.Contains(out, "service=svc") {
		t.Errorf("Expected base attributes in text output, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	if GetRequestID(context.Background()) != "" {
		t.Error("Expected empty request id without value")
	}
}

func TestRunIDContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	defer InitLoggerWithWriter(DefaultConfig(), &bytes.Buffer{})

	runID := GenerateRequestID()
	ctx := WithRunID(context.Background(), runID)

	if GetRunID(ctx) != runID {
		t.Errorf("Expected run_id=%s, got %s", runID, GetRunID(ctx))
	}

	FromContext(ctx).Info("run started")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry[AttrKeyRunID] != runID {
		t.Errorf("Expected run_id in log entry, got %v", logEntry[AttrKeyRunID])
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("Expected distinct ids")
	}
	if len(a) != 36 {
		t.Errorf("Expected UUID string, got %q", a)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}

	if config.LogLevel() != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", config.LogLevel())
	}

	if config.IsJSON() {
		t.Error("Expected text format by default")
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}

	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}

	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.LogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug level in dev, got %v", config.LogLevel())
	}

	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}

func TestConfig_LogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConfigFor(t *testing.T) {
	cases := []struct {
		env       string
		json      bool
		addSource bool
	}{
		{"prod", true, false},
		{"staging", true, false},
		{"dev", false, true},
		{"development", false, true},
		{"ci", false, false},
		{"", false, false},
	}

	for _, tc := range cases {
		config := ConfigFor(tc.env)
		if config.IsJSON() != tc.json {
			t.Errorf("ConfigFor(%q).IsJSON() = %v, want %v", tc.env, config.IsJSON(), tc.json)
		}
		if config.AddSource != tc.addSource {
			t.Errorf("ConfigFor(%q).AddSource = %v, want %v", tc.env, config.AddSource, tc.addSource)
		}
		if tc.env != "" && config.Environment != tc.env {
			t.Errorf("ConfigFor(%q).Environment = %q", tc.env, config.Environment)
		}
	}
}
