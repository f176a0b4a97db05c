package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/Brownie44l1/herbal-id/internal/imageproc"
	"github.com/Brownie44l1/herbal-id/internal/pkg/web"
)

const (
	imageField = "image"

	msgModelUnavailable = "Model tidak dapat dimuat. Aplikasi tidak dapat berfungsi. Pastikan file model tersedia di lokasi yang dikonfigurasi."
	msgNoImage          = "Silakan unggah gambar dengan menekan tombol di atas."
	msgInvalidImage     = "Format gambar tidak valid. Gunakan JPEG, PNG, GIF, atau WEBP."
	msgTooLarge         = "Ukuran gambar terlalu besar."
	msgBadForm          = "Formulir unggahan tidak dapat dibaca."
	msgPredictFailed    = "Terjadi kesalahan saat menganalisis gambar."
	msgFound            = "Hasil Ditemukan!"
)

var errNoImage = errors.New("no image uploaded")

// Score is one class probability expressed as a percentage.
type Score struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Identification is what the user sees after a successful upload.
type Identification struct {
	Label       string   `json:"label"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Scores      []Score  `json:"scores"`
	Known       bool     `json:"known"`
}

// Percent is the confidence truncated to a whole number for the progress bar.
func (i *Identification) Percent() int {
	return int(i.Confidence)
}

// uploadError carries the HTTP status and user message for a failed upload.
type uploadError struct {
	status int
	msg    string
	err    error
}

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

type upload struct {
	filename string
	decoded  *imageproc.Decoded
}

// Index renders the upload form, or the fatal error when the model is missing.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	pg := &page{}
	status := http.StatusOK
	if h.classifier == nil {
		pg.Fatal = h.fatalMessage()
		status = http.StatusServiceUnavailable
	}
	render(w, status, pg)
}

// Identify handles the HTML form submission.
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	up, result, err := h.identify(r)
	if err != nil {
		var ue *uploadError
		if !errors.As(err, &ue) {
			ue = &uploadError{status: http.StatusInternalServerError, msg: msgPredictFailed, err: err}
		}

		pg := &page{}
		switch {
		case ue.status == http.StatusServiceUnavailable:
			slog.Error("identify without model", "reason", ue.err)
			pg.Fatal = h.fatalMessage()
		case errors.Is(ue.err, errNoImage):
			pg.Notice = ue.msg
		default:
			slog.Warn("identify failed", "status", ue.status, "reason", ue.err)
			pg.Problem = ue.msg
		}
		render(w, ue.status, pg)
		return
	}

	render(w, http.StatusOK, &page{
		Result:   result,
		Preview:  previewURL(up.decoded),
		Filename: up.filename,
	})
}

// IdentifyAPI is the JSON twin of Identify.
func (h *Handler) IdentifyAPI(w http.ResponseWriter, r *http.Request) {
	_, result, err := h.identify(r)
	if err != nil {
		var ue *uploadError
		if !errors.As(err, &ue) {
			ue = &uploadError{status: http.StatusInternalServerError, msg: msgPredictFailed, err: err}
		}
		msg := ue.msg
		if ue.status == http.StatusServiceUnavailable {
			msg = h.fatalMessage()
		}
		web.Fail(w, ue.status, ue.err, msg, nil)
		return
	}

	web.OK(w, http.StatusOK, msgFound, result)
}

func (h *Handler) identify(r *http.Request) (*upload, *Identification, error) {
	if h.classifier == nil {
		return nil, nil, &uploadError{status: http.StatusServiceUnavailable, msg: msgModelUnavailable, err: h.modelErr}
	}

	up, err := h.readUpload(r)
	if err != nil {
		return nil, nil, err
	}

	md := h.classifier.Metadata()
	start := time.Now()

	inputData, err := imageproc.Preprocess(up.decoded.Image, md.ImageSize, md.Layout)
	if err != nil {
		return nil, nil, fmt.Errorf("preprocess image: %w", err)
	}

	prediction, err := h.classifier.Predict(inputData)
	if err != nil {
		return nil, nil, fmt.Errorf("predict: %w", err)
	}
	h.observe(prediction.Class, time.Since(start))

	info, known := h.catalog.Lookup(prediction.Class)
	result := &Identification{
		Label:       prediction.Class,
		Confidence:  float64(prediction.Confidence) * 100,
		Description: info.Description,
		Benefits:    info.Benefits,
		Scores:      sortedScores(prediction.Scores),
		Known:       known,
	}

	slog.Info("leaf identified",
		"file", up.filename,
		"format", up.decoded.Format,
		"label", result.Label,
		"confidence", result.Confidence,
	)
	return up, result, nil
}

func (h *Handler) readUpload(r *http.Request) (*upload, error) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, &uploadError{status: http.StatusRequestEntityTooLarge, msg: msgTooLarge, err: err}
		case errors.Is(err, http.ErrNotMultipart):
			return nil, &uploadError{status: http.StatusBadRequest, msg: msgNoImage, err: errNoImage}
		default:
			return nil, &uploadError{status: http.StatusBadRequest, msg: msgBadForm, err: err}
		}
	}

	file, header, err := r.FormFile(imageField)
	if err != nil {
		return nil, &uploadError{status: http.StatusBadRequest, msg: msgNoImage, err: errNoImage}
	}
	defer file.Close()

	decoded, err := imageproc.Decode(file, h.maxImagePixels)
	switch {
	case errors.Is(err, imageproc.ErrImageTooLarge):
		return nil, &uploadError{status: http.StatusRequestEntityTooLarge, msg: msgTooLarge, err: err}
	case err != nil:
		return nil, &uploadError{status: http.StatusBadRequest, msg: msgInvalidImage, err: err}
	}

	slog.Debug("received image",
		"file", header.Filename,
		"bytes", header.Size,
		"format", decoded.Format,
		"width", decoded.Image.Bounds().Dx(),
		"height", decoded.Image.Bounds().Dy(),
	)
	return &upload{filename: header.Filename, decoded: decoded}, nil
}

func (h *Handler) fatalMessage() string {
	return fmt.Sprintf("%s (%v)", msgModelUnavailable, h.modelErr)
}

func sortedScores(scores map[string]float32) []Score {
	out := make([]Score, 0, len(scores))
	for label, v := range scores {
		out = append(out, Score{Label: label, Percent: float64(v) * 100})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent == out[j].Percent {
			return out[i].Label < out[j].Label
		}
		return out[i].Percent > out[j].Percent
	})
	return out
}

func previewURL(d *imageproc.Decoded) template.URL {
	return template.URL("data:image/" + d.Format + ";base64," + base64.StdEncoding.EncodeToString(d.Raw))
}
