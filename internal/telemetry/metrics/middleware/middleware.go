package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Middleware instruments the prometheus /metrics endpoint itself.
type Middleware struct {
	requestsInFlight prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
}

func New(reg prometheus.Registerer, constLabels prometheus.Labels) *Middleware {
	factory := promauto.With(reg)
	return &Middleware{
		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "metrics_endpoint_requests_in_flight",
			Help:        "Current number of scrapes being served",
			ConstLabels: constLabels,
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "metrics_endpoint_requests_total",
			Help:        "Total number of scrapes by handler",
			ConstLabels: constLabels,
		}, []string{"handler"}),
	}
}

func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()
		handler.ServeHTTP(w, r)
		m.requestsTotal.WithLabelValues(handlerName).Inc()
	})
}
