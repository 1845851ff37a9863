package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/metrics"
	"github.com/pbanos/id3/tree"
)

func TestObserver(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	leaf := tree.NewLeaf(feature.String("yes"))
	m.NodeGrown(leaf)
	m.NodeGrown(leaf)
	m.NodeGrown(tree.NewSplit("a", tree.Branch{Value: feature.Int(1), Node: leaf}))
	m.TreeGrown(leaf, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Nodes.WithLabelValues("leaf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Nodes.WithLabelValues("split")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TreesGrown))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GrowDuration))
}

func TestClassified(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.Classified(nil)
	m.Classified(&tree.MissingValueError{Feature: "a", Value: feature.Int(3)})
	m.Classified(errors.New("boom"))
	m.Classified(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Classifications.WithLabelValues(metrics.OutcomeClassified)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues(metrics.OutcomeMissing)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues(metrics.OutcomeError)))
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
