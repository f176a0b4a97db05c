package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Brownie44l1/herbal-id/internal/metrics"
)

func TestCollector_Handler(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	c.ObserveRequest("/identify", http.MethodPost, http.StatusOK, 120*time.Millisecond)
	c.ObserveInference("Daun Sirih", 40*time.Millisecond)
	c.SetModelLoaded(true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	out := string(body)

	wants := []string{
		`http_requests_total{method="POST",path="/identify",status="200"} 1`,
		`leaf_predictions_total{label="Daun Sirih"} 1`,
		`leaf_inference_duration_seconds_count 1`,
		`leaf_model_loaded 1`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
