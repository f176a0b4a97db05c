package app

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"

	"github.com/Brownie44l1/herbal-id/internal/config"
	"github.com/Brownie44l1/herbal-id/internal/handlers"
	"github.com/Brownie44l1/herbal-id/internal/metrics"
	"github.com/Brownie44l1/herbal-id/internal/middleware"
)

const (
	pathIndex       = "/"
	pathIdentify    = "/identify"
	pathIdentifyAPI = "/api/identify"
	pathPredict     = "/api/predict"
	pathHealth      = "/health"
	pathMetrics     = "/metrics"
)

// routes is every registered path; request metrics use no other labels.
var routes = []string{pathIndex, pathIdentify, pathIdentifyAPI, pathPredict, pathHealth, pathMetrics}

func NewRouter(opts *config.ServerOptions, h *handlers.Handler, collector *metrics.Collector) http.Handler {
	r := goexpress.New()

	r.Use(middleware.RequestID)
	r.Use(goexpress.RecoverFromPanic)
	r.Use(middleware.LogRequest(collector, routes...))
	r.Use(middleware.CORS(opts.AllowedOrigin))
	r.Use(middleware.LimitBody(opts.MaxBodyBytes))

	r.Get(pathIndex, h.Index)
	r.Post(pathIdentify, h.Identify)
	r.Post(pathIdentifyAPI, h.IdentifyAPI)
	r.Post(pathPredict, h.Predict)
	r.Options(pathIdentifyAPI, noContent)
	r.Options(pathPredict, noContent)
	r.Get(pathHealth, h.Health)
	r.Get(pathMetrics, collector.Handler().ServeHTTP)

	return r
}

// noContent gives preflight requests a route; CORS answers them first.
func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
