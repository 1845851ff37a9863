/*
Package metrics exposes Prometheus metrics about growing trees and
classifying vectors with them.
*/
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pbanos/id3/tree"
)

const namespace = "id3"

// Outcomes of a classification, used as the "outcome" label value.
const (
	OutcomeClassified = "classified"
	OutcomeMissing    = "missing_value"
	OutcomeError      = "error"
)

// Metrics holds the collectors. It implements id3.Observer.
type Metrics struct {
	TreesGrown      prometheus.Counter
	Nodes           *prometheus.CounterVec
	GrowDuration    prometheus.Histogram
	Classifications *prometheus.CounterVec
}

/*
New creates the collectors and registers them on the given
registerer. It panics if any of them is already registered, as
prometheus.MustRegister does.
*/
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TreesGrown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trees_grown_total",
			Help:      "Number of decision trees grown.",
		}),
		Nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_grown_total",
			Help:      "Number of tree nodes grown by kind (leaf or split).",
		}, []string{"kind"}),
		GrowDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grow_duration_seconds",
			Help:      "Time spent growing a tree.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Number of vectors classified by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.TreesGrown, m.Nodes, m.GrowDuration, m.Classifications)
	return m
}

// NodeGrown counts a grown node by its kind.
func (m *Metrics) NodeGrown(n tree.Node) {
	switch n.(type) {
	case *tree.Leaf:
		m.Nodes.WithLabelValues("leaf").Inc()
	case *tree.Split:
		m.Nodes.WithLabelValues("split").Inc()
	}
}

// TreeGrown counts a grown tree and observes the time it took.
func (m *Metrics) TreeGrown(_ tree.Node, elapsed time.Duration) {
	m.TreesGrown.Inc()
	m.GrowDuration.Observe(elapsed.Seconds())
}

// Classified counts a classification by the outcome derived from its
// error.
func (m *Metrics) Classified(err error) {
	m.Classifications.WithLabelValues(Outcome(err)).Inc()
}

// Outcome returns the outcome label value for a classification error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeClassified
	case errors.Is(err, tree.ErrMissingValue):
		return OutcomeMissing
	}
	return OutcomeError
}
