package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests    *prometheus.CounterVec
	apiLatency     *prometheus.HistogramVec
	apiInflight    prometheus.Gauge
	commentOps     *prometheus.CounterVec
	commentStore   *prometheus.GaugeVec
	catalogMoves   *prometheus.GaugeVec
	storeBootstrap *prometheus.CounterVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// Init builds the process-wide metrics set when enabled and returns nil
// otherwise. Every method on a nil *Metrics is a no-op.
func Init(log *logger.Logger, enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// NewMetrics builds an independent metrics set on its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trainer_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trainer_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trainer_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		commentOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trainer_comment_operations_total",
			Help: "Comment service operations by op/outcome.",
		}, []string{"op", "outcome"}),
		commentStore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "trainer_comment_store_active",
			Help: "1 for the comment store backend selected at startup.",
		}, []string{"mode"}),
		catalogMoves: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "trainer_catalog_moves",
			Help: "Moves declared per catalog category.",
		}, []string{"category"}),
		storeBootstrap: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trainer_comment_store_bootstrap_total",
			Help: "Comment store bootstrap attempts by mode/outcome/code.",
		}, []string{"mode", "outcome", "code"}),
	}
	reg.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.commentOps,
		m.commentStore,
		m.catalogMoves,
		m.storeBootstrap,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveCommentOp(op string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.commentOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) SetCommentStoreActive(mode string) {
	if m == nil {
		return
	}
	m.commentStore.Reset()
	m.commentStore.WithLabelValues(mode).Set(1)
}

func (m *Metrics) ObserveCommentStoreBootstrap(mode, outcome, code string) {
	if m == nil {
		return
	}
	m.storeBootstrap.WithLabelValues(mode, outcome, code).Inc()
}

func (m *Metrics) SetCatalogMoves(category string, n int) {
	if m == nil {
		return
	}
	m.catalogMoves.WithLabelValues(category).Set(float64(n))
}
