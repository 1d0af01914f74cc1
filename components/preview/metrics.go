package preview

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts preview requests and render latency per renderer.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the preview collectors and registers them on reg when
// it is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "footer_preview_requests_total",
				Help: "Footer preview requests by renderer and response status",
			},
			[]string{"renderer", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "footer_preview_render_seconds",
				Help:    "Time spent generating a footer preview",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"renderer"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration)
	}
	return m
}

func (m *Metrics) observe(renderer string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if renderer == "" {
		renderer = "default"
	}
	m.Requests.WithLabelValues(renderer, strconv.Itoa(status)).Inc()
	if status == http.StatusOK {
		m.Duration.WithLabelValues(renderer).Observe(elapsed.Seconds())
	}
}
