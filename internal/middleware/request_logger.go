package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// RequestObserver receives one call per finished request.
type RequestObserver interface {
	ObserveRequest(path, method string, status int, d time.Duration)
}

// UnmatchedRoute is reported for any path outside the registered routes.
const UnmatchedRoute = "unmatched"

// LogRequest logs every request with slog and reports it to observer under
// its route. Paths not listed in routes are reported as UnmatchedRoute, so
// the set of observed paths stays bounded. observer may be nil.
func LogRequest(observer RequestObserver, routes ...string) func(http.Handler) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := NewResponseRecorder(w)
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			if observer != nil {
				observer.ObserveRequest(routeLabel(known, r.URL.Path), r.Method, rec.Status(), duration)
			}

			slog.Info("incoming request",
				"request_id", RequestIDFromContext(r.Context()),
				"user_agent", r.UserAgent(),
				"ip", getIPAddress(r),
				"method", r.Method,
				"url", r.URL.String(),
				"proto", r.Proto,
				slog.Int("status_code", rec.Status()),
				slog.Int("bytes", rec.BytesWritten()),
				"duration", duration,
			)
		})
	}
}

func routeLabel(known map[string]struct{}, path string) string {
	if _, ok := known[path]; ok {
		return path
	}
	return UnmatchedRoute
}

func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
