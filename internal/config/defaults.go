package config

import (
	"time"

	"github.com/Brownie44l1/herbal-id/internal/imageproc"
	timex "github.com/Brownie44l1/herbal-id/internal/pkg/time"
)

const (
	defaultPort         = 8080
	defaultMaxBodyBytes = 10 << 20
)

// defaults is what Load starts from before decoding the config file, so
// any key the file omits keeps the value below.
func defaults() *Options {
	return &Options{
		Env: "development",
		Server: &ServerOptions{
			Port:            defaultPort,
			ReadTimeout:     timex.Duration{Duration: 15 * time.Second},
			WriteTimeout:    timex.Duration{Duration: 30 * time.Second},
			IdleTimeout:     timex.Duration{Duration: 60 * time.Second},
			ShutdownTimeout: timex.Duration{Duration: 10 * time.Second},
			MaxBodyBytes:    defaultMaxBodyBytes,
			MaxImagePixels:  imageproc.DefaultMaxPixels,
			AllowedOrigin:   "*",
		},
		Model: &ModelOptions{
			Path:         "models/model_klasifikasi_daun.onnx",
			MetadataPath: "models/model_metadata.json",
		},
		Log: &LogOptions{
			Level: "info",
		},
	}
}
