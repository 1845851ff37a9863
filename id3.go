/*
Package id3 grows decision trees from labeled datasets with the ID3
algorithm: every node splits its records on the feature whose values
yield the most information gain about their class, until records share
a class or no feature is left to split them with.
*/
package id3

import (
	"context"
	"log/slog"
	"time"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/internal/logging"
	"github.com/pbanos/id3/tree"
)

/*
Observer is notified of the progress of a Grower. NodeGrown is called
for every node once built (children before parents) and TreeGrown once
per call to Grow that succeeds, with the time it took.
*/
type Observer interface {
	NodeGrown(tree.Node)
	TreeGrown(root tree.Node, elapsed time.Duration)
}

/*
Grower grows decision trees. The zero value is ready to use and
evaluates features sequentially without logging.
*/
type Grower struct {
	// Workers is the number of feature columns evaluated concurrently
	// when looking for the best split. Values below 2 mean sequential.
	Workers int
	// Logger receives debug records for each decision taken.
	Logger *slog.Logger
	// Observer, if not nil, is notified of every node grown.
	Observer Observer
}

/*
Grow takes a context, a dataset and the labels of its feature columns
and returns the root of a decision tree grown from them using a
sequential Grower.
*/
func Grow(ctx context.Context, d dataset.Dataset, labels feature.Labels) (tree.Node, error) {
	return (&Grower{}).Grow(ctx, d, labels)
}

/*
Grow takes a context, a dataset and the labels of its feature columns,
in the same order as the columns, and returns the root of a decision
tree grown from them.

An error is returned if the dataset is empty (ErrEmptyDataset), its
records have different lengths or the number of labels does not match
the number of feature columns (*dataset.StructuralError), or the context
is done before the tree is complete. No tree is returned along with an
error.
*/
func (g *Grower) Grow(ctx context.Context, d dataset.Dataset, labels feature.Labels) (tree.Node, error) {
	if len(d) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if labels.Len() != d.FeatureCount() {
		return nil, &dataset.StructuralError{Record: -1, Want: d.FeatureCount(), Got: labels.Len()}
	}
	start := time.Now()
	root, err := g.grow(ctx, d, labels)
	if err != nil {
		return nil, err
	}
	if g.Observer != nil {
		g.Observer.TreeGrown(root, time.Since(start))
	}
	return root, nil
}

func (g *Grower) grow(ctx context.Context, d dataset.Dataset, labels feature.Labels) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if label, ok := d.Pure(); ok {
		return g.leaf(label, "pure"), nil
	}
	if d.FeatureCount() == 0 {
		return g.majorityLeaf(d, "no features left")
	}
	p, err := bestPartition(ctx, d, g.Workers)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return g.majorityLeaf(d, "no information gain")
	}
	name := labels.At(p.Column)
	g.logger().Debug("splitting", "feature", name, "gain", p.InformationGain, "records", len(d), "branches", len(p.Values))
	remaining := labels.Without(p.Column)
	branches := make([]tree.Branch, 0, len(p.Values))
	for i, v := range p.Values {
		child, err := g.grow(ctx, p.Subsets[i], remaining)
		if err != nil {
			return nil, err
		}
		branches = append(branches, tree.Branch{Value: v, Node: child})
	}
	s := tree.NewSplit(name, branches...)
	g.notify(s)
	return s, nil
}

func (g *Grower) majorityLeaf(d dataset.Dataset, reason string) (tree.Node, error) {
	label, err := d.Majority()
	if err != nil {
		return nil, err
	}
	return g.leaf(label, reason), nil
}

func (g *Grower) leaf(label feature.Value, reason string) tree.Node {
	g.logger().Debug("leaf", "label", label, "reason", reason)
	l := tree.NewLeaf(label)
	g.notify(l)
	return l
}

func (g *Grower) notify(n tree.Node) {
	if g.Observer != nil {
		g.Observer.NodeGrown(n)
	}
}

var nopLogger = logging.NewNop()

func (g *Grower) logger() *slog.Logger {
	if g.Logger == nil {
		return nopLogger
	}
	return g.Logger
}
