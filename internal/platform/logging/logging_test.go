package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTextLoggerTagsService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("appshell", &buf, Settings{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.WithField("path", "/dashboard").Info("request")

	line := buf.String()
	for _, marker := range []string{"service=appshell", "path=/dashboard", "msg=request"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing %q: %q", marker, line)
		}
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no color codes for non-terminal output: %q", line)
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("appshell", &buf, Settings{Format: "json"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("ready")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log line: %v", err)
	}
	if payload["service"] != "appshell" || payload["msg"] != "ready" {
		t.Fatalf("payload = %#v", payload)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("appshell", &buf, Settings{Level: "warn"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info entry to be filtered, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("appshell", nil, Settings{Level: "loud"}); err == nil {
		t.Fatal("expected unknown level error")
	}
}

func TestDiscardDropsEntries(t *testing.T) {
	t.Parallel()

	Discard().Info("nothing")
}
