package logadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/athebyme/request-router/internal/core/domain"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range testCases {
		if got := ParseLevel(in); got != want {
			t.Errorf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestSlogAdapter_LevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapterTo(&buf, "warn", false, false)

	logger.Info("hidden")
	logger.With("component", "Test").Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info must be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "component=Test") || !strings.Contains(out, "key=value") {
		t.Errorf("expected scoped attributes in output: %s", out)
	}
}

func TestAdmissionLogger_JSONEvents(t *testing.T) {
	var buf bytes.Buffer
	observer := NewAdmissionLogger(NewSlogAdapterTo(&buf, "debug", true, false))

	d, err := domain.NewDestination("192.168.0.1", 1, domain.WithObserver(observer))
	if err != nil {
		t.Fatal(err)
	}
	d.TryAdmit()
	d.TryAdmit()
	d.Release()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		records = append(records, rec)
	}

	wantMsgs := []string{"Request accepted", "Request rejected, destination overloaded", "Request completed"}
	if len(records) != len(wantMsgs) {
		t.Fatalf("expected %d records, got %d: %s", len(wantMsgs), len(records), buf.String())
	}
	for i, want := range wantMsgs {
		if records[i]["msg"] != want {
			t.Errorf("record %d: expected %q, got %v", i, want, records[i]["msg"])
		}
		if records[i]["destination"] != "192.168.0.1" || records[i]["component"] != "Admission" {
			t.Errorf("record %d: missing attributes: %v", i, records[i])
		}
	}
	if records[1]["in_flight"] != float64(1) {
		t.Errorf("rejection must report current load, got %v", records[1]["in_flight"])
	}
}
