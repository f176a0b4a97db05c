package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/Brownie44l1/herbal-id/internal/pkg/time"
	"github.com/Brownie44l1/herbal-id/internal/pkg/validation"
)

type ServerOptions struct {
	Port            int            `json:"port,omitempty" validate:"gt=0,lte=65535"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" validate:"gt=0"`
	MaxImagePixels  int            `json:"max_image_pixels,omitempty" validate:"gt=0"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty"`
}

type ModelOptions struct {
	Path         string `json:"path,omitempty" validate:"required"`
	MetadataPath string `json:"metadata_path,omitempty"`
	LibraryPath  string `json:"library_path,omitempty"`
}

type LogOptions struct {
	Level string `json:"level,omitempty" validate:"loglevel"`
}

type Options struct {
	Env    string         `json:"env,omitempty"`
	Server *ServerOptions `json:"server,omitempty" validate:"required"`
	Model  *ModelOptions  `json:"model,omitempty" validate:"required"`
	Log    *LogOptions    `json:"log,omitempty" validate:"required"`
}

func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", o.Env),
		slog.Any("server", o.Server),
		slog.Any("model", o.Model),
		slog.Any("log", o.Log),
	)
}

// Load reads cfgFile, applies environment overrides and validates the result.
func Load(cfgFile string) (*Options, error) {
	opts, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(opts); err != nil {
		return nil, err
	}

	if errs := validation.New().ValidateStruct(opts); errs != nil {
		return nil, fmt.Errorf("invalid config %s: %v", cfgFile, errs)
	}

	return opts, nil
}

func parseCfgFile(cfgFile string) (*Options, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	opts := defaults()
	if err := json.Unmarshal(configFile, opts); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return opts, nil
}

func overrideWithEnv(opts *Options) error {
	if appEnv, ok := os.LookupEnv("ENV"); ok {
		opts.Env = appEnv
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		opts.Server.Port = port
	}

	if path, ok := os.LookupEnv("MODEL_PATH"); ok {
		opts.Model.Path = path
	}
	if path, ok := os.LookupEnv("MODEL_METADATA_PATH"); ok {
		opts.Model.MetadataPath = path
	}
	if path, ok := os.LookupEnv("ONNXRUNTIME_LIB"); ok {
		opts.Model.LibraryPath = path
	}
	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		opts.Log.Level = level
	}
	return nil
}
