// Package metrics exposes Prometheus collectors for HTTP traffic and inference.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inferenceTime   prometheus.Histogram
	predictions     *prometheus.CounterVec
	modelLoaded     prometheus.Gauge
}

// New registers every collector on a private registry so tests can build as
// many collectors as they need.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			}, []string{"path", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			}, []string{"path"},
		),
		inferenceTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "leaf_inference_duration_seconds",
				Help:    "Time spent preprocessing and running the classifier",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
			},
		),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaf_predictions_total",
				Help: "Predictions served, by predicted label",
			}, []string{"label"},
		),
		modelLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "leaf_model_loaded",
				Help: "1 when the classifier model is loaded, 0 otherwise",
			},
		),
	}

	c.registry.MustRegister(
		c.requestCount,
		c.requestDuration,
		c.inferenceTime,
		c.predictions,
		c.modelLoaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) ObserveRequest(path, method string, status int, d time.Duration) {
	c.requestCount.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func (c *Collector) ObserveInference(label string, d time.Duration) {
	c.inferenceTime.Observe(d.Seconds())
	c.predictions.WithLabelValues(label).Inc()
}

func (c *Collector) SetModelLoaded(loaded bool) {
	if loaded {
		c.modelLoaded.Set(1)
		return
	}
	c.modelLoaded.Set(0)
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
