package tree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// Tree represents a decision tree: the root node, the feature labels
// it was grown with and the name of the class it predicts.
type Tree struct {
	Root     Node
	Features feature.Labels
	Class    string
}

// New takes a root node, the feature labels used to grow it and the
// name of the class column and returns a tree with them.
func New(root Node, features feature.Labels, class string) *Tree {
	return &Tree{root, features, class}
}

// Classify takes the feature values of a record, laid out as the tree's
// features, and returns the label the tree predicts for it.
func (t *Tree) Classify(vector []feature.Value) (feature.Value, error) {
	if t == nil || t.Root == nil {
		return feature.Value{}, fmt.Errorf("nil tree cannot classify vectors")
	}
	return Classify(t.Root, t.Features, vector)
}

/*
Classify takes the root of a tree, the feature labels the tree was grown
with and a vector of feature values laid out as those labels, and walks
the tree until reaching a leaf, whose label it returns.

At each split, the split's feature is looked up in labels to find the
position of the value to read from the vector. If the vector's value was
never observed for that feature when growing the tree, an error wrapping
ErrMissingValue is returned. ErrUnknownFeature is returned when a split
asks about a feature not found in labels and a *dataset.StructuralError
when the vector is shorter than labels.
*/
func Classify(root Node, labels feature.Labels, vector []feature.Value) (feature.Value, error) {
	if len(vector) < labels.Len() {
		return feature.Value{}, &dataset.StructuralError{Record: -1, Want: labels.Len(), Got: len(vector)}
	}
	n := root
	for {
		switch current := n.(type) {
		case *Leaf:
			return current.label, nil
		case *Split:
			i := labels.Index(current.feature)
			if i < 0 {
				return feature.Value{}, fmt.Errorf("%w: %s", ErrUnknownFeature, current.feature)
			}
			v := vector[i]
			child, ok := current.children[v]
			if !ok {
				return feature.Value{}, &MissingValueError{Feature: current.feature, Value: v}
			}
			n = child
		default:
			return feature.Value{}, fmt.Errorf("unexpected node type %T", n)
		}
	}
}

/*
Test takes a context and a dataset laid out as the tree's features plus
the class label, and returns three values:
  * the rate of records of the dataset whose label is predicted by the tree
  * the number of records the tree could not classify because of a value
    it never observed (ErrMissingValue)
  * an error if a record could not be classified for any other reason. If
    this is not nil, the other values will be 0.0 and 0 respectively
*/
func (t *Tree) Test(ctx context.Context, d dataset.Dataset) (float64, int, error) {
	if len(d) == 0 {
		return 0.0, 0, dataset.ErrEmptyDataset
	}
	var success float64
	var missing int
	for _, r := range d {
		if err := ctx.Err(); err != nil {
			return 0.0, 0, err
		}
		label, err := t.Classify(r.Features())
		if err != nil {
			if !errors.Is(err, ErrMissingValue) {
				return 0.0, 0, err
			}
			missing++
			continue
		}
		if label == r.Label() {
			success += 1.0
		}
	}
	return success / float64(len(d)), missing, nil
}

/*
Traverse takes a context, a bottomup boolean and an error-returning
function and goes through the tree calling the function with every
node and its depth. The function is called with a parent before its
children unless bottomup is true. Traversing is aborted on the first
error returned by the function or by the context.
*/
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, Node, int) error) error {
	return traverse(ctx, t.Root, 0, bottomup, f)
}

func traverse(ctx context.Context, n Node, depth int, bottomup bool, f func(context.Context, Node, int) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		if err = f(ctx, n, depth); err != nil {
			return err
		}
	}
	if s, ok := n.(*Split); ok {
		for _, b := range s.branches {
			if err = traverse(ctx, b.Node, depth+1, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(ctx, n, depth)
	}
	return nil
}

// Stats returns the number of splits and leaves of the tree and its depth.
func (t *Tree) Stats() (splits, leaves, depth int) {
	t.Traverse(context.Background(), false, func(_ context.Context, n Node, d int) error {
		switch n.(type) {
		case *Split:
			splits++
		case *Leaf:
			leaves++
		}
		if d > depth {
			depth = d
		}
		return nil
	})
	return
}

func (t *Tree) String() string {
	return subtreeString(t.Root)
}

func subtreeString(n Node) string {
	var result string
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("{ %v }\n", n.label)
	case *Split:
		result = fmt.Sprintf("[%s]\n|\n", n.feature)
		for i, b := range n.branches {
			for j, line := range strings.Split(subtreeString(b.Node), "\n") {
				if len(line) == 0 {
					continue
				}
				switch {
				case j == 0:
					result = fmt.Sprintf("%s|__%v: %s\n", result, b.Value, line)
				case i == len(n.branches)-1:
					result = fmt.Sprintf("%s   %s\n", result, line)
				default:
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	}
	return result
}
