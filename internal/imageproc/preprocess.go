package imageproc

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	LayoutNHWC = "NHWC"
	LayoutNCHW = "NCHW"

	channels = 3
)

// Preprocess resizes img to size x size, drops the alpha channel and scales
// every channel to [0,1]. The result is a batch of one in the given layout
// and always holds size*size*3 values.
func Preprocess(img image.Image, size int, layout string) ([]float32, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	if size <= 0 {
		return nil, fmt.Errorf("target size must be positive, got %d", size)
	}
	if layout != LayoutNHWC && layout != LayoutNCHW {
		return nil, fmt.Errorf("unknown tensor layout %q", layout)
	}

	// nfnt resamples in premultiplied form, so a fully transparent pixel comes
	// out black whatever RGB it stores. Alpha is dropped after the resize.
	src := imaging.Clone(img)
	resized := resize.Resize(uint(size), uint(size), src, resize.Bicubic)

	bounds := resized.Bounds()
	plane := size * size
	inputData := make([]float32, channels*plane)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBAModel.Convert(resized.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			rgb := [channels]float32{
				float32(c.R) / 255.0,
				float32(c.G) / 255.0,
				float32(c.B) / 255.0,
			}

			pixelIndex := y*size + x
			for ch, v := range rgb {
				if layout == LayoutNCHW {
					inputData[ch*plane+pixelIndex] = v
				} else {
					inputData[pixelIndex*channels+ch] = v
				}
			}
		}
	}

	return inputData, nil
}
