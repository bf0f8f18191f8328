package metrics

import (
	"net/http"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polybius/polybius-go/internal/model"
)

// Request outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

// Metrics holds the generator's Prometheus collectors.
type Metrics struct {
	requests  *prometheus.CounterVec
	passwords prometheus.Counter
	bits      *prometheus.CounterVec
	length    prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polybius",
			Name:      "generate_requests_total",
			Help:      "Generation requests by outcome.",
		}, []string{"outcome"}),
		passwords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polybius",
			Name:      "passwords_generated_total",
			Help:      "Passwords assembled.",
		}),
		bits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polybius",
			Name:      "bits_generated_total",
			Help:      "Bits emitted by kind.",
		}, []string{"kind"}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "polybius",
			Name:      "password_length_chars",
			Help:      "Rendered password length in characters.",
			Buckets:   prometheus.LinearBuckets(4, 4, 10),
		}),
	}

	reg.MustRegister(m.requests, m.passwords, m.bits, m.length)
	return m
}

// ObserveRequest counts one generation request.
func (m *Metrics) ObserveRequest(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}

// ObservePassword records one assembled password.
func (m *Metrics) ObservePassword(p model.Password) {
	m.passwords.Inc()
	m.length.Observe(float64(utf8.RuneCountInString(p.String())))
	for _, b := range p {
		m.bits.WithLabelValues(kindOf(b)).Inc()
	}
}

// kindOf returns the bit's source kind. Labels are never used as metric
// values since text labels are user data.
func kindOf(b model.Bit) string {
	if b.Kind == "" {
		return "unknown"
	}
	return string(b.Kind)
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
