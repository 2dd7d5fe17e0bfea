package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Authorization decision labels.
const (
	StageSession = "session"
	StageRole    = "role"
	StageSelf    = "self"

	OutcomeAllowed = "allowed"
	OutcomeDenied  = "denied"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AuthDecisionsTotal *prometheus.CounterVec
	TokensIssuedTotal  prometheus.Counter

	PaymentsRecordedTotal prometheus.Counter
	PaymentIntentsTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camp_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "camp_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camp_auth_decisions_total",
				Help: "Authorization decisions by stage and outcome",
			},
			[]string{"stage", "outcome"},
		),
		TokensIssuedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "camp_tokens_issued_total",
				Help: "Total number of identity tokens issued",
			},
		),
		PaymentsRecordedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "camp_payments_recorded_total",
				Help: "Total number of committed payments",
			},
		),
		PaymentIntentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camp_payment_intents_total",
				Help: "Payment intent attempts by status",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthDecisionsTotal,
		m.TokensIssuedTotal,
		m.PaymentsRecordedTotal,
		m.PaymentIntentsTotal,
	)
	return m
}

// The Record* helpers are safe on a nil *Metrics so callers may run without
// instrumentation.

func (m *Metrics) RecordAuthDecision(stage, outcome string) {
	if m == nil {
		return
	}
	m.AuthDecisionsTotal.WithLabelValues(stage, outcome).Inc()
}

func (m *Metrics) RecordTokenIssued() {
	if m == nil {
		return
	}
	m.TokensIssuedTotal.Inc()
}

func (m *Metrics) RecordPayment() {
	if m == nil {
		return
	}
	m.PaymentsRecordedTotal.Inc()
}

func (m *Metrics) RecordPaymentIntent(err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.PaymentIntentsTotal.WithLabelValues(status).Inc()
}

// GinMiddleware instruments requests. Routes are labelled by their pattern so
// path parameters do not explode cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
