// Package metrics exposes Prometheus instruments for the validator service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the instruments the validator records into. Each App
// owns its own registry, so tests can start and stop instances without
// duplicate-registration panics.
type Collector struct {
	registry     *prometheus.Registry
	validations  *prometheus.CounterVec
	generations  *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Validation requests by outcome.",
		}, []string{"outcome"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation requests by outcome.",
		}, []string{"outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	c.registry.MustRegister(c.validations, c.generations, c.httpDuration)
	return c
}

// Validated counts a well-formed validation by checksum outcome.
func (c *Collector) Validated(valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	c.validations.WithLabelValues(outcome).Inc()
}

// ValidateRejected counts a validation request with malformed input.
func (c *Collector) ValidateRejected() {
	c.validations.WithLabelValues("malformed").Inc()
}

// Generated counts a successful generation.
func (c *Collector) Generated() {
	c.generations.WithLabelValues("ok").Inc()
}

// GenerateRejected counts a generation request with bad parameters.
func (c *Collector) GenerateRejected() {
	c.generations.WithLabelValues("rejected").Inc()
}

// Middleware records request latency labeled by chi route pattern and
// response status.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		c.httpDuration.
			WithLabelValues(route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}

// Handler serves the collector's registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
