// Package imageproc turns uploaded image bytes into model-ready tensors.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the decoded size of an upload. A fully decoded
// image costs four bytes per pixel, and a few kilobytes of compressed PNG
// can declare far more than that.
const DefaultMaxPixels = 25_000_000

var (
	ErrEmptyImage        = errors.New("image data is empty")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image dimensions exceed the pixel limit")
)

// imaging also registers bmp and tiff; uploads are limited to these.
var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// Decoded is an upload after format detection and orientation correction.
type Decoded struct {
	Image  image.Image
	Format string
	Raw    []byte
}

// Decode reads r fully and decodes it, rotating the image according to its
// EXIF orientation tag when one is present. The header is checked first:
// formats outside jpeg, png, gif and webp return ErrUnsupportedFormat and
// images declaring more than maxPixels pixels return ErrImageTooLarge
// without being decoded. maxPixels <= 0 means DefaultMaxPixels.
func Decode(r io.Reader, maxPixels int) (*Decoded, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if !allowedFormats[format] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d %s", ErrImageTooLarge, cfg.Width, cfg.Height, format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}

	return &Decoded{Image: img, Format: format, Raw: data}, nil
}
