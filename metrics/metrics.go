package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the service's collectors. Each instance has its own
// prometheus registry so routers built in tests do not collide.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
	StatusUpdates *prometheus.CounterVec
}

// NewRegistry creates and registers every collector on a fresh registry
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_http_requests_total",
		Help: "HTTP requests handled, by method, route and status class.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orders_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders inserted into the store.",
	})
	statusUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_status_updates_total",
		Help: "Order status updates applied, by target status.",
	}, []string{"status"})

	r.MustRegister(httpRequests, httpDuration, ordersCreated, statusUpdates)
	return &Registry{
		reg:           r,
		HTTPRequests:  httpRequests,
		HTTPDuration:  httpDuration,
		OrdersCreated: ordersCreated,
		StatusUpdates: statusUpdates,
	}
}

// Handler serves the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
