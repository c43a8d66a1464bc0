package httpapp

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloglist_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bloglist_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request metrics and writes one access log line per request.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := routeLabel(r.URL.Path)
		method := methodLabel(r.Method)
		requestsTotal.WithLabelValues(route, method, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())

		if route != "/metrics" && route != "/healthz" {
			log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, elapsed.Round(time.Microsecond))
		}
	})
}

// routeLabel maps a request path onto one of the routes the server serves.
// Anything unrouted shares the "other" label so scans cannot grow the series.
func routeLabel(path string) string {
	switch path {
	case "/healthz", "/metrics":
		return path
	}
	if strings.HasPrefix(path, "/swagger/") {
		return "/swagger/"
	}
	segments := splitPath(path)
	if len(segments) < 2 || segments[0] != "api" {
		return "other"
	}
	switch rest := segments[1:]; {
	case len(rest) == 1:
		switch rest[0] {
		case "blogs", "users", "login", "version", "openapi.json":
			return "/api/" + rest[0]
		}
	case len(rest) == 2 && rest[0] == "blogs":
		if rest[1] == "stats" {
			return "/api/blogs/stats"
		}
		return "/api/blogs/{id}"
	}
	return "other"
}

func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	}
	return "other"
}
