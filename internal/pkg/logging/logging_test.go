package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr error
	}{
		{"debug", slog.LevelDebug, nil},
		{"INFO", slog.LevelInfo, nil},
		{"warn", slog.LevelWarn, nil},
		{"Warning", slog.LevelWarn, nil},
		{"error", slog.LevelError, nil},
		{"", slog.LevelInfo, nil},
		{"verbose", slog.LevelInfo, ErrUnknownLevel},
		{"trace", slog.LevelInfo, ErrUnknownLevel},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ParseLevel(%q) error = %v, want: %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want: %v", tc.in, got, tc.want)
		}
	}
}

// Not parallel: SetupLogger replaces the default logger.
func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	if err := SetupLogger("production", "info", &buf); err != nil {
		t.Fatal(err)
	}
	slog.Debug("hidden")
	slog.Info("visible", "label", "Daun Mint")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("production output is not JSON: %v (%s)", err, out)
	}
	if rec["label"] != "Daun Mint" {
		t.Errorf("rec[\"label\"] = %v, want: %q", rec["label"], "Daun Mint")
	}
	if rec["service"] != serviceName {
		t.Errorf("rec[\"service\"] = %v, want: %q", rec["service"], serviceName)
	}
}

func TestSetupLogger_UnknownLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	if err := SetupLogger("development", "chatty", &bytes.Buffer{}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("SetupLogger(chatty) error = %v, want: %v", err, ErrUnknownLevel)
	}
	if slog.Default() != prev {
		t.Error("SetupLogger replaced the default logger despite the error")
	}
}
