package handlers_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Brownie44l1/herbal-id/internal/herbal"
	"github.com/Brownie44l1/herbal-id/internal/model"
)

const testImageSize = 8

// stubClassifier returns fixed scores and records the tensors it receives.
type stubClassifier struct {
	md     model.Metadata
	scores []float32
	err    error

	mu     sync.Mutex
	inputs [][]float32
}

func newStubClassifier(scores []float32) *stubClassifier {
	classes := herbal.Default().Names()
	return &stubClassifier{
		md: model.Metadata{
			InputShape:  []int64{1, testImageSize, testImageSize, 3},
			OutputShape: []int64{1, int64(len(classes))},
			Classes:     classes,
			ImageSize:   testImageSize,
			Layout:      model.LayoutNHWC,
		},
		scores: scores,
	}
}

func (s *stubClassifier) Metadata() model.Metadata { return s.md }

func (s *stubClassifier) Predict(input []float32) (*model.Prediction, error) {
	s.mu.Lock()
	s.inputs = append(s.inputs, input)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	if len(input) != s.md.InputSize() {
		return nil, model.ErrInputSize
	}
	return model.NewPrediction(s.scores, s.md.Classes)
}

type stubObserver struct {
	mu     sync.Mutex
	labels []string
}

func (o *stubObserver) ObserveInference(label string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels = append(o.labels, label)
}

// leafScores puts most of the mass on class idx.
func leafScores(idx int, top float32) []float32 {
	n := len(herbal.Default().Names())
	scores := make([]float32, n)
	rest := (1 - top) / float32(n-1)
	for i := range scores {
		scores[i] = rest
	}
	scores[idx] = top
	return scores
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{R: 40, G: 150, B: 60, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// declaredPNG is only a PNG signature and header chunk claiming a w x h gray
// image. It is enough for format detection and a few dozen bytes long.
func declaredPNG(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8

	crc := crc32.NewIEEE()
	crc.Write([]byte("IHDR"))
	crc.Write(ihdr)

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.WriteString("IHDR")
	buf.Write(ihdr)
	_ = binary.Write(&buf, binary.BigEndian, crc.Sum32())
	return buf.Bytes()
}

// uploadRequest builds a multipart POST. A nil data omits the file field.
func uploadRequest(t *testing.T, target, field string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if data != nil {
		fw, err := mw.CreateFormFile(field, "daun.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatal(err)
		}
	} else if err := mw.WriteField("note", "tanpa gambar"); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

var errModelMissing = errors.New("open models/model_klasifikasi_daun.onnx: no such file or directory")
