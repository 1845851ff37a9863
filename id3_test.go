package id3_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

func record(values ...interface{}) dataset.Record {
	r := make(dataset.Record, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case int:
			r = append(r, feature.Int(int64(v)))
		case string:
			r = append(r, feature.String(v))
		}
	}
	return r
}

func fish() (dataset.Dataset, feature.Labels) {
	return dataset.Dataset{
		record(1, 1, "yes"),
		record(1, 1, "yes"),
		record(1, 0, "no"),
		record(0, 1, "no"),
		record(0, 1, "no"),
	}, feature.NewLabels("no surfacing", "flippers")
}

func fishTree() tree.Node {
	return tree.NewSplit("no surfacing",
		tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(feature.String("no"))},
		tree.Branch{Value: feature.Int(1), Node: tree.NewSplit("flippers",
			tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(feature.String("no"))},
			tree.Branch{Value: feature.Int(1), Node: tree.NewLeaf(feature.String("yes"))},
		)},
	)
}

// weather returns the play tennis dataset, with more features and
// values than fish.
func weather() (dataset.Dataset, feature.Labels) {
	rows := [][]string{
		{"sunny", "hot", "high", "false", "no"},
		{"sunny", "hot", "high", "true", "no"},
		{"overcast", "hot", "high", "false", "yes"},
		{"rainy", "mild", "high", "false", "yes"},
		{"rainy", "cool", "normal", "false", "yes"},
		{"rainy", "cool", "normal", "true", "no"},
		{"overcast", "cool", "normal", "true", "yes"},
		{"sunny", "mild", "high", "false", "no"},
		{"sunny", "cool", "normal", "false", "yes"},
		{"rainy", "mild", "normal", "false", "yes"},
		{"sunny", "mild", "normal", "true", "yes"},
		{"overcast", "mild", "high", "true", "yes"},
		{"overcast", "hot", "normal", "false", "yes"},
		{"rainy", "mild", "high", "true", "no"},
	}
	d := make(dataset.Dataset, 0, len(rows))
	for _, row := range rows {
		r := make(dataset.Record, 0, len(row))
		for _, v := range row {
			r = append(r, feature.String(v))
		}
		d = append(d, r)
	}
	return d, feature.NewLabels("outlook", "temperature", "humidity", "windy")
}

func TestBestFeature(t *testing.T) {
	d, _ := fish()
	best, err := id3.BestFeature(d)
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	w, _ := weather()
	best, err = id3.BestFeature(w)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestBestFeatureTiesGoToFirstColumn(t *testing.T) {
	d := dataset.Dataset{
		record(1, 1, "a"),
		record(0, 0, "b"),
	}
	best, err := id3.BestFeature(d)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestBestFeatureWithoutGain(t *testing.T) {
	d := dataset.Dataset{
		record(1, "a"),
		record(1, "b"),
	}
	best, err := id3.BestFeature(d)
	require.NoError(t, err)
	assert.Equal(t, id3.NoFeature, best)

	_, err = id3.BestFeature(dataset.Dataset{})
	assert.True(t, errors.Is(err, dataset.ErrEmptyDataset))
}

func TestNewPartition(t *testing.T) {
	d, _ := fish()
	e, err := d.Entropy()
	require.NoError(t, err)
	p, err := id3.NewPartition(d, e, 0)
	require.NoError(t, err)
	assert.Equal(t, []feature.Value{feature.Int(1), feature.Int(0)}, p.Values)
	assert.Len(t, p.Subsets, 2)
	assert.InDelta(t, 0.4199730940219749, p.InformationGain, 1e-12)

	p, err = id3.NewPartition(d, e, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.17095059445466854, p.InformationGain, 1e-12)
}

func TestGrowFish(t *testing.T) {
	d, labels := fish()
	root, err := id3.Grow(context.Background(), d, labels)
	require.NoError(t, err)
	assert.True(t, tree.Equal(fishTree(), root))

	label, err := tree.Classify(root, labels, []feature.Value{feature.Int(1), feature.Int(0)})
	require.NoError(t, err)
	assert.Equal(t, feature.String("no"), label)
	label, err = tree.Classify(root, labels, []feature.Value{feature.Int(1), feature.Int(1)})
	require.NoError(t, err)
	assert.Equal(t, feature.String("yes"), label)
}

func TestGrowClassifiesTrainingRecords(t *testing.T) {
	d, labels := weather()
	root, err := id3.Grow(context.Background(), d, labels)
	require.NoError(t, err)
	for i, r := range d {
		label, err := tree.Classify(root, labels, r.Features())
		require.NoError(t, err)
		assert.Equal(t, r.Label(), label, "record %d", i)
	}
}

func TestGrowIsDeterministic(t *testing.T) {
	d, labels := weather()
	first, err := id3.Grow(context.Background(), d, labels)
	require.NoError(t, err)
	for workers := 1; workers <= 4; workers++ {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			g := &id3.Grower{Workers: workers}
			root, err := g.Grow(context.Background(), d, labels)
			require.NoError(t, err)
			assert.True(t, tree.Equal(first, root))
		})
	}
}

func TestGrowDoesNotModifyInputs(t *testing.T) {
	d, labels := fish()
	_, err := (&id3.Grower{Workers: 2}).Grow(context.Background(), d, labels)
	require.NoError(t, err)

	want, wantLabels := fish()
	assert.Equal(t, want, d)
	assert.True(t, wantLabels.Equal(labels))
}

func TestGrowFallsBackToMajority(t *testing.T) {
	d := dataset.Dataset{
		record(1, "a"),
		record(1, "b"),
		record(1, "b"),
	}
	root, err := id3.Grow(context.Background(), d, feature.NewLabels("x"))
	require.NoError(t, err)
	assert.True(t, tree.Equal(tree.NewLeaf(feature.String("b")), root))

	d = dataset.Dataset{
		record("a"),
		record("b"),
		record("a"),
	}
	root, err = id3.Grow(context.Background(), d, feature.NewLabels())
	require.NoError(t, err)
	assert.True(t, tree.Equal(tree.NewLeaf(feature.String("a")), root))
}

func TestGrowErrors(t *testing.T) {
	d, labels := fish()

	_, err := id3.Grow(context.Background(), dataset.Dataset{}, labels)
	assert.True(t, errors.Is(err, dataset.ErrEmptyDataset))

	var se *dataset.StructuralError
	_, err = id3.Grow(context.Background(), d, feature.NewLabels("no surfacing"))
	assert.True(t, errors.As(err, &se))

	malformed := append(dataset.Dataset{record(1, "yes")}, d...)
	_, err = id3.Grow(context.Background(), malformed, labels)
	assert.True(t, errors.As(err, &se))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root, err := id3.Grow(ctx, d, labels)
	assert.Nil(t, root)
	assert.True(t, errors.Is(err, context.Canceled))
}

type countingObserver struct {
	lock   sync.Mutex
	leaves int
	splits int
	trees  int
}

func (co *countingObserver) NodeGrown(n tree.Node) {
	co.lock.Lock()
	defer co.lock.Unlock()
	switch n.(type) {
	case *tree.Leaf:
		co.leaves++
	case *tree.Split:
		co.splits++
	}
}

func (co *countingObserver) TreeGrown(tree.Node, time.Duration) {
	co.lock.Lock()
	defer co.lock.Unlock()
	co.trees++
}

func TestGrowerNotifiesObserver(t *testing.T) {
	d, labels := fish()
	o := &countingObserver{}
	g := &id3.Grower{Observer: o}
	_, err := g.Grow(context.Background(), d, labels)
	require.NoError(t, err)
	assert.Equal(t, 3, o.leaves)
	assert.Equal(t, 2, o.splits)
	assert.Equal(t, 1, o.trees)
}
