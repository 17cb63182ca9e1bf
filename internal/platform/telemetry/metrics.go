package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quotes"

// Metrics holds the domain counters scraped from /-/metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	mutations    *prometheus.CounterVec
	randomServed *prometheus.CounterVec
	logins       *prometheus.CounterVec
	imports      *prometheus.CounterVec
	imported     prometheus.Counter
}

// NewMetrics registers the domain counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Create, update and delete operations by entity.",
		}, []string{"entity", "op"}),
		randomServed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "random_served_total",
			Help:      "Random quote requests, split by whether a quote was found.",
		}, []string{"result"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"result"}),
		imports: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Catalog imports by source and outcome.",
		}, []string{"source", "result"}),
		imported: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imported_quotes_total",
			Help:      "Quotes written by catalog imports.",
		}),
	}
}

// Mutation counts a write to entity ("quote", "author", "user").
func (m *Metrics) Mutation(entity, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(entity, op).Inc()
}

// RandomServed counts a random quote request.
func (m *Metrics) RandomServed(found bool) {
	if m == nil {
		return
	}

	result := "empty"
	if found {
		result = "quote"
	}
	m.randomServed.WithLabelValues(result).Inc()
}

// Login counts a login attempt.
func (m *Metrics) Login(ok bool) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome(ok)).Inc()
}

// Import counts a catalog import and, on success, the quotes it wrote.
func (m *Metrics) Import(source string, quotes int, ok bool) {
	if m == nil {
		return
	}

	m.imports.WithLabelValues(source, outcome(ok)).Inc()
	if ok {
		m.imported.Add(float64(quotes))
	}
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
