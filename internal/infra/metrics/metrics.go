// Package metrics exposes authentication counters through a private Prometheus registry.
package metrics

import (
	"net/http"

	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeEmailInUse         = "email_in_use"
	OutcomeUserNotFound       = "user_not_found"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// Metrics holds the service's collectors.
type Metrics struct {
	registry      *prometheus.Registry
	signups       *prometheus.CounterVec
	signins       *prometheus.CounterVec
	sessionsSwept prometheus.Counter
}

var _ service.AuthMetrics = (*Metrics)(nil)

// New creates the collectors and registers them, with the Go and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authgate_signups_total",
				Help: "Total number of signup attempts by outcome",
			},
			[]string{"outcome"},
		),
		signins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authgate_signins_total",
				Help: "Total number of signin attempts by outcome",
			},
			[]string{"outcome"},
		),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authgate_sessions_swept_total",
			Help: "Total number of expired sessions removed by the sweeper",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.signups,
		m.signins,
		m.sessionsSwept,
	)

	return m
}

// NewAuthMetrics adapts Metrics to the domain interface for injection.
func NewAuthMetrics(m *Metrics) service.AuthMetrics {
	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordSignup(err error) {
	m.signups.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) RecordSignin(err error) {
	m.signins.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) RecordSessionsSwept(n int64) {
	if n > 0 {
		m.sessionsSwept.Add(float64(n))
	}
}

// Outcome maps an authentication result to a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domainerrors.ErrEmailInUse):
		return OutcomeEmailInUse
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return OutcomeUserNotFound
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	default:
		return OutcomeError
	}
}
