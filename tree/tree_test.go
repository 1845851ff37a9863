package tree_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

var (
	yes = feature.String("yes")
	no  = feature.String("no")
)

func fishTree() *tree.Tree {
	root := tree.NewSplit("no surfacing",
		tree.Branch{Value: feature.Int(1), Node: tree.NewSplit("flippers",
			tree.Branch{Value: feature.Int(1), Node: tree.NewLeaf(yes)},
			tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(no)},
		)},
		tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(no)},
	)
	return tree.New(root, feature.NewLabels("no surfacing", "flippers"), "fish")
}

func vector(values ...int64) []feature.Value {
	v := make([]feature.Value, 0, len(values))
	for _, i := range values {
		v = append(v, feature.Int(i))
	}
	return v
}

func TestClassify(t *testing.T) {
	ft := fishTree()
	tests := []struct {
		vector []feature.Value
		want   feature.Value
	}{
		{vector(1, 0), no},
		{vector(1, 1), yes},
		{vector(0, 1), no},
		{vector(0, 7), no},
	}
	for _, tt := range tests {
		got, err := ft.Classify(tt.vector)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "vector %v", tt.vector)
	}
}

func TestClassifyUsesLabelPositions(t *testing.T) {
	ft := fishTree()
	swapped := feature.NewLabels("flippers", "no surfacing")
	got, err := tree.Classify(ft.Root, swapped, vector(0, 1))
	require.NoError(t, err)
	assert.Equal(t, no, got)
}

func TestClassifyMissingValue(t *testing.T) {
	_, err := fishTree().Classify(vector(2, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrMissingValue))
	var mve *tree.MissingValueError
	require.True(t, errors.As(err, &mve))
	assert.Equal(t, "no surfacing", mve.Feature)
	assert.Equal(t, feature.Int(2), mve.Value)

	_, err = fishTree().Classify([]feature.Value{feature.String("1"), feature.Int(1)})
	assert.True(t, errors.Is(err, tree.ErrMissingValue), "values of another kind have no branch")
}

func TestClassifyErrors(t *testing.T) {
	ft := fishTree()
	_, err := tree.Classify(ft.Root, feature.NewLabels("flippers"), vector(1))
	assert.True(t, errors.Is(err, tree.ErrUnknownFeature))

	var se *dataset.StructuralError
	_, err = ft.Classify(vector(1))
	assert.True(t, errors.As(err, &se))

	var nilTree *tree.Tree
	_, err = nilTree.Classify(vector(1, 1))
	assert.Error(t, err)
}

func TestClassifyLeafRoot(t *testing.T) {
	got, err := tree.Classify(tree.NewLeaf(yes), feature.NewLabels(), nil)
	require.NoError(t, err)
	assert.Equal(t, yes, got)
}

func TestTest(t *testing.T) {
	d := dataset.Dataset{
		{feature.Int(1), feature.Int(1), yes},
		{feature.Int(1), feature.Int(0), no},
		{feature.Int(0), feature.Int(1), yes},
		{feature.Int(3), feature.Int(1), no},
	}
	rate, missing, err := fishTree().Test(context.Background(), d)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-12)
	assert.Equal(t, 1, missing)

	_, _, err = fishTree().Test(context.Background(), dataset.Dataset{})
	assert.Equal(t, dataset.ErrEmptyDataset, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fishTree().Test(ctx, d)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestString(t *testing.T) {
	want := `[no surfacing]
|
|__1: [flippers]
|  |
|  |__1: { yes }
|  |__0: { no }
|__0: { no }
`
	assert.Equal(t, want, fishTree().String())
}

func TestStats(t *testing.T) {
	splits, leaves, depth := fishTree().Stats()
	assert.Equal(t, 2, splits)
	assert.Equal(t, 3, leaves)
	assert.Equal(t, 2, depth)
}

func TestTraverse(t *testing.T) {
	var topdown, bottomup []int
	ft := fishTree()
	err := ft.Traverse(context.Background(), false, func(_ context.Context, _ tree.Node, depth int) error {
		topdown = append(topdown, depth)
		return nil
	})
	require.NoError(t, err)
	err = ft.Traverse(context.Background(), true, func(_ context.Context, _ tree.Node, depth int) error {
		bottomup = append(bottomup, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, topdown)
	assert.Equal(t, []int{2, 2, 1, 1, 0}, bottomup)

	stop := errors.New("stop")
	visited := 0
	err = ft.Traverse(context.Background(), false, func(context.Context, tree.Node, int) error {
		visited++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, visited)
}

func TestEqual(t *testing.T) {
	a := fishTree().Root
	reordered := tree.NewSplit("no surfacing",
		tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(no)},
		tree.Branch{Value: feature.Int(1), Node: tree.NewSplit("flippers",
			tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(no)},
			tree.Branch{Value: feature.Int(1), Node: tree.NewLeaf(yes)},
		)},
	)
	assert.True(t, tree.Equal(a, reordered))
	assert.False(t, tree.Equal(a, tree.NewLeaf(no)))
	assert.False(t, tree.Equal(a, tree.NewSplit("no surfacing",
		tree.Branch{Value: feature.Int(0), Node: tree.NewLeaf(no)},
	)))
	assert.True(t, tree.Equal(nil, nil))
}

func TestNewSplitCopiesBranches(t *testing.T) {
	branches := []tree.Branch{
		{Value: feature.Int(0), Node: tree.NewLeaf(no)},
		{Value: feature.Int(1), Node: tree.NewLeaf(yes)},
	}
	s := tree.NewSplit("flippers", branches...)
	branches[0].Node = tree.NewLeaf(yes)
	child, ok := s.Child(feature.Int(0))
	require.True(t, ok)
	assert.Equal(t, no, child.(*tree.Leaf).Label())

	got := s.Branches()
	got[1].Node = tree.NewLeaf(no)
	child, _ = s.Child(feature.Int(1))
	assert.Equal(t, yes, child.(*tree.Leaf).Label())
	assert.Equal(t, "flippers", s.Feature())
	_, ok = s.Child(feature.Int(2))
	assert.False(t, ok)
}
