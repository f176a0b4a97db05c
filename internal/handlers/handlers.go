package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ferdiebergado/gopherkit/http/response"

	"github.com/Brownie44l1/herbal-id/internal/herbal"
	"github.com/Brownie44l1/herbal-id/internal/imageproc"
	"github.com/Brownie44l1/herbal-id/internal/model"
	"github.com/Brownie44l1/herbal-id/internal/pkg/validation"
	"github.com/Brownie44l1/herbal-id/internal/pkg/web"
)

// Classifier is the loaded model. *model.Server satisfies it.
type Classifier interface {
	Predict(input []float32) (*model.Prediction, error)
	Metadata() model.Metadata
}

type InferenceObserver interface {
	ObserveInference(label string, d time.Duration)
}

// Providers holds the handler dependencies. Classifier is nil when the model
// could not be loaded, in which case ModelErr says why.
type Providers struct {
	Classifier     Classifier
	ModelErr       error
	Catalog        *herbal.Catalog
	Validator      *validation.Validator
	Observer       InferenceObserver
	MaxUploadBytes int64
	MaxImagePixels int
}

type Handler struct {
	classifier     Classifier
	modelErr       error
	catalog        *herbal.Catalog
	validator      *validation.Validator
	observer       InferenceObserver
	maxUploadBytes int64
	maxImagePixels int
}

const defaultMaxUploadBytes = 10 << 20

var errModelUnavailable = errors.New("model is not loaded")

func NewHandler(p *Providers) *Handler {
	h := &Handler{
		classifier:     p.Classifier,
		modelErr:       p.ModelErr,
		catalog:        p.Catalog,
		validator:      p.Validator,
		observer:       p.Observer,
		maxUploadBytes: p.MaxUploadBytes,
		maxImagePixels: p.MaxImagePixels,
	}
	if h.classifier == nil && h.modelErr == nil {
		h.modelErr = errModelUnavailable
	}
	if h.catalog == nil {
		h.catalog = herbal.Default()
	}
	if h.validator == nil {
		h.validator = validation.New()
	}
	if h.maxUploadBytes <= 0 {
		h.maxUploadBytes = defaultMaxUploadBytes
	}
	if h.maxImagePixels <= 0 {
		h.maxImagePixels = imageproc.DefaultMaxPixels
	}
	return h
}

type modelInfo struct {
	Classes   []string `json:"classes"`
	ImageSize int      `json:"image_size"`
	Layout    string   `json:"layout"`
}

type healthResponse struct {
	Status string     `json:"status"`
	Model  *modelInfo `json:"model,omitempty"`
	Error  string     `json:"error,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	if h.classifier == nil {
		response.JSON(w, http.StatusServiceUnavailable, &healthResponse{
			Status: "unavailable",
			Error:  h.modelErr.Error(),
		})
		return
	}

	md := h.classifier.Metadata()
	response.JSON(w, http.StatusOK, &healthResponse{
		Status: "healthy",
		Model: &modelInfo{
			Classes:   md.Classes,
			ImageSize: md.ImageSize,
			Layout:    md.Layout,
		},
	})
}

// Predict runs the model on an already preprocessed tensor.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if h.classifier == nil {
		web.Fail(w, http.StatusServiceUnavailable, h.modelErr, msgModelUnavailable, nil)
		return
	}

	var req model.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			web.Fail(w, http.StatusRequestEntityTooLarge, err, "Request body too large", nil)
			return
		}
		web.Fail(w, http.StatusBadRequest, err, "Invalid JSON", nil)
		return
	}

	if errs := h.validator.ValidateStruct(&req); errs != nil {
		web.Fail(w, http.StatusBadRequest, errors.New("invalid prediction request"), "Invalid input", errs)
		return
	}

	expectedSize := h.classifier.Metadata().InputSize()
	if len(req.Image) != expectedSize {
		web.Fail(w, http.StatusBadRequest, model.ErrInputSize,
			fmt.Sprintf("Expected %d values, got %d", expectedSize, len(req.Image)), nil)
		return
	}

	start := time.Now()
	result, err := h.classifier.Predict(req.Image)
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, "Prediction failed", nil)
		return
	}
	h.observe(result.Class, time.Since(start))

	web.OK(w, http.StatusOK, "", result)
}

func (h *Handler) observe(label string, d time.Duration) {
	if h.observer != nil {
		h.observer.ObserveInference(label, d)
	}
}
