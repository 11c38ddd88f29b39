package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "io_gate"

// metrics holds the request collectors of one handler. Several handlers may
// share a registerer: already registered collectors are reused.
type metrics struct {
	responseTime  prometheus.Histogram
	totalRequests *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	responseTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_response_time_seconds",
		Help:      "http response time.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
	totalRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "http requests by code and method",
	}, []string{"code", "method"})

	var err error
	m := &metrics{}
	if m.responseTime, err = register(reg, responseTime); err != nil {
		return nil, err
	}
	if m.totalRequests, err = register(reg, totalRequests); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

func (m *metrics) collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := &responseWriter{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(mw, r)

		m.responseTime.Observe(time.Since(start).Seconds())
		m.totalRequests.WithLabelValues(strconv.Itoa(mw.Status()), r.Method).Inc()
	})
}
