package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gopherkit/env"

	"github.com/Brownie44l1/herbal-id/internal/config"
	"github.com/Brownie44l1/herbal-id/internal/handlers"
	"github.com/Brownie44l1/herbal-id/internal/herbal"
	"github.com/Brownie44l1/herbal-id/internal/metrics"
	"github.com/Brownie44l1/herbal-id/internal/model"
	"github.com/Brownie44l1/herbal-id/internal/pkg/logging"
	"github.com/Brownie44l1/herbal-id/internal/pkg/validation"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
	}

	opts, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := logging.SetupLogger(opts.Env, opts.Log.Level, os.Stdout); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", opts))

	catalog := herbal.Default()
	collector := metrics.New()

	providers := &handlers.Providers{
		Catalog:        catalog,
		Validator:      validation.New(),
		Observer:       collector,
		MaxUploadBytes: opts.Server.MaxBodyBytes,
		MaxImagePixels: opts.Server.MaxImagePixels,
	}

	srv, err := loadClassifier(opts.Model, catalog)
	if err != nil {
		// The server still starts so users see why identification is unavailable.
		slog.Error("Failed to load model.", "path", opts.Model.Path, "reason", err)
		providers.ModelErr = err
	} else {
		defer srv.Close()
		providers.Classifier = srv
	}
	collector.SetModelLoaded(err == nil)

	router := NewRouter(opts.Server, handlers.NewHandler(providers), collector)
	app := New(opts, router)

	if err := app.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return app.Shutdown()
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info("No env file found, using the process environment.", "file", path)
		return nil
	}
	if err := env.Load(path); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// loadClassifier resolves the model metadata and opens the ONNX session.
func loadClassifier(opts *config.ModelOptions, catalog *herbal.Catalog) (*model.Server, error) {
	md := model.DefaultMetadata(catalog.Names())

	if opts.MetadataPath != "" {
		loaded, err := model.LoadMetadata(opts.MetadataPath, md)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("Model metadata not found, using built-in defaults.", "path", opts.MetadataPath)
		case err != nil:
			return nil, err
		default:
			md = loaded
		}
	}

	if missing := catalog.Missing(md.Classes); len(missing) > 0 {
		slog.Warn("Model classes without description.", "classes", missing)
	}

	return model.NewServer(opts.Path, md, opts.LibraryPath)
}
