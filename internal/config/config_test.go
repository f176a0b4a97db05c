package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Brownie44l1/herbal-id/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := config.Load(writeConfig(t, `{"server":{"read_timeout":"5s","idle_timeout":60}}`))
	if err != nil {
		t.Fatal(err)
	}

	if opts.Server.Port != 8080 {
		t.Errorf("opts.Server.Port = %d, want: %d", opts.Server.Port, 8080)
	}
	if opts.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("opts.Server.ReadTimeout = %v, want: %v", opts.Server.ReadTimeout.Duration, 5*time.Second)
	}
	if opts.Server.ShutdownTimeout.Duration != 10*time.Second {
		t.Errorf("opts.Server.ShutdownTimeout = %v, want: %v", opts.Server.ShutdownTimeout.Duration, 10*time.Second)
	}
	if opts.Server.MaxBodyBytes != 10<<20 {
		t.Errorf("opts.Server.MaxBodyBytes = %d, want: %d", opts.Server.MaxBodyBytes, 10<<20)
	}
	if opts.Server.MaxImagePixels != 25_000_000 {
		t.Errorf("opts.Server.MaxImagePixels = %d, want: %d", opts.Server.MaxImagePixels, 25_000_000)
	}
	if opts.Server.IdleTimeout.Duration != 60*time.Second {
		t.Errorf("opts.Server.IdleTimeout = %v, want: %v", opts.Server.IdleTimeout.Duration, 60*time.Second)
	}
	if opts.Model.Path == "" {
		t.Error("opts.Model.Path is empty, want default path")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MODEL_PATH", "/srv/leaf.onnx")
	t.Setenv("MODEL_METADATA_PATH", "/srv/leaf.json")
	t.Setenv("ONNXRUNTIME_LIB", "/usr/lib/libonnxruntime.so")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENV", "production")

	opts, err := config.Load(writeConfig(t, `{"server":{"port":8000},"model":{"path":"a.onnx"}}`))
	if err != nil {
		t.Fatal(err)
	}

	if opts.Server.Port != 9090 {
		t.Errorf("opts.Server.Port = %d, want: %d", opts.Server.Port, 9090)
	}
	if opts.Model.Path != "/srv/leaf.onnx" {
		t.Errorf("opts.Model.Path = %q, want: %q", opts.Model.Path, "/srv/leaf.onnx")
	}
	if opts.Model.MetadataPath != "/srv/leaf.json" {
		t.Errorf("opts.Model.MetadataPath = %q, want: %q", opts.Model.MetadataPath, "/srv/leaf.json")
	}
	if opts.Model.LibraryPath != "/usr/lib/libonnxruntime.so" {
		t.Errorf("opts.Model.LibraryPath = %q, want: %q", opts.Model.LibraryPath, "/usr/lib/libonnxruntime.so")
	}
	if opts.Log.Level != "DEBUG" || opts.Env != "production" {
		t.Errorf("opts.Log.Level, opts.Env = %q, %q, want: %q, %q", opts.Log.Level, opts.Env, "DEBUG", "production")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, content, port string
	}{
		{"malformed json", `{"server":`, ""},
		{"bad duration", `{"server":{"read_timeout":"later"}}`, ""},
		{"zero port", `{"server":{"port":-1}}`, ""},
		{"empty model path", `{"model":{"path":""}}`, ""},
		{"unknown log level", `{"log":{"level":"chatty"}}`, ""},
		{"negative timeout", `{"server":{"idle_timeout":"-5s"}}`, ""},
		{"zero pixel limit", `{"server":{"max_image_pixels":0}}`, ""},
		{"non numeric PORT", `{}`, "eighty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.port != "" {
				t.Setenv("PORT", tc.port)
			}
			if _, err := config.Load(writeConfig(t, tc.content)); err == nil {
				t.Errorf("config.Load(%s) = nil error, want error", tc.content)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("config.Load(missing) = nil error, want error")
	}
}
