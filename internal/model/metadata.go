package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrInvalidMetadata = errors.New("invalid model metadata")

// DefaultMetadata describes the Keras leaf classifier exported to ONNX:
// a single 224x224 RGB image in NHWC order and one score per class.
func DefaultMetadata(classes []string) Metadata {
	return Metadata{
		InputShape:  []int64{1, defaultImageSize, defaultImageSize, 3},
		OutputShape: []int64{1, int64(len(classes))},
		Classes:     append([]string(nil), classes...),
		ImageSize:   defaultImageSize,
		Layout:      LayoutNHWC,
		InputName:   defaultInputName,
		OutputName:  defaultOutputName,
	}
}

// LoadMetadata reads the JSON sidecar that ships next to the model file.
// Missing fields fall back to the values of fallback.
func LoadMetadata(path string, fallback Metadata) (Metadata, error) {
	path = filepath.Clean(path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata %s: %w", path, err)
	}

	var md Metadata
	if err := json.Unmarshal(raw, &md); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata %s: %w", path, err)
	}

	md.fill(fallback)
	if err := md.Validate(); err != nil {
		return Metadata{}, err
	}
	return md, nil
}

func (m *Metadata) fill(fallback Metadata) {
	if len(m.Classes) == 0 {
		m.Classes = fallback.Classes
	}
	if m.ImageSize == 0 {
		m.ImageSize = fallback.ImageSize
	}
	if m.Layout == "" {
		m.Layout = fallback.Layout
	}
	if len(m.InputShape) == 0 {
		if m.Layout == LayoutNCHW {
			m.InputShape = []int64{1, 3, int64(m.ImageSize), int64(m.ImageSize)}
		} else {
			m.InputShape = []int64{1, int64(m.ImageSize), int64(m.ImageSize), 3}
		}
	}
	if len(m.OutputShape) == 0 {
		m.OutputShape = []int64{1, int64(len(m.Classes))}
	}
	if m.InputName == "" {
		m.InputName = fallback.InputName
	}
	if m.OutputName == "" {
		m.OutputName = fallback.OutputName
	}
}

// Validate checks that the shapes agree with the image size and class list.
func (m Metadata) Validate() error {
	if len(m.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrInvalidMetadata)
	}
	if m.ImageSize <= 0 {
		return fmt.Errorf("%w: image_size must be positive, got %d", ErrInvalidMetadata, m.ImageSize)
	}
	if m.Layout != LayoutNHWC && m.Layout != LayoutNCHW {
		return fmt.Errorf("%w: unknown layout %q", ErrInvalidMetadata, m.Layout)
	}

	want := m.ImageSize * m.ImageSize * 3
	if got := m.InputSize(); got != want {
		return fmt.Errorf("%w: input shape %v holds %d values, image_size %d needs %d",
			ErrInvalidMetadata, m.InputShape, got, m.ImageSize, want)
	}
	if got := elements(m.OutputShape); got < len(m.Classes) {
		return fmt.Errorf("%w: output shape %v holds %d scores for %d classes",
			ErrInvalidMetadata, m.OutputShape, got, len(m.Classes))
	}
	return nil
}

// InputSize is the number of float32 values the model consumes per request.
func (m Metadata) InputSize() int {
	return elements(m.InputShape)
}

func elements(shape []int64) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range shape {
		n *= int(dim)
	}
	return n
}
