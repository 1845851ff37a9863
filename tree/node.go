package tree

import (
	"github.com/pbanos/id3/feature"
)

/*
Node is a node of a decision tree. It is either a *Leaf holding the
class label predicted for the records that reach it, or a *Split that
sends records down one of its branches according to their value for
a feature. Nodes cannot be modified once built.
*/
type Node interface {
	node()
}

// Leaf is a terminal node holding a single predicted class label.
type Leaf struct {
	label feature.Value
}

// NewLeaf returns a leaf predicting the given label.
func NewLeaf(label feature.Value) *Leaf {
	return &Leaf{label}
}

// Label returns the class label predicted by the leaf.
func (l *Leaf) Label() feature.Value {
	return l.label
}

func (*Leaf) node() {}

// Branch connects a Split with the subtree for one value of its feature.
type Branch struct {
	Value feature.Value
	Node  Node
}

/*
Split is an internal node holding the name of the feature it asks about
and a subtree for each value of that feature observed while growing it.
*/
type Split struct {
	feature  string
	branches []Branch
	children map[feature.Value]Node
}

/*
NewSplit takes a feature name and the branches for its values and
returns a Split node. The branches are copied; if a value appears in
more than one branch the last one wins.
*/
func NewSplit(f string, branches ...Branch) *Split {
	s := &Split{
		feature:  f,
		branches: make([]Branch, 0, len(branches)),
		children: make(map[feature.Value]Node, len(branches)),
	}
	for _, b := range branches {
		if _, ok := s.children[b.Value]; ok {
			for i := range s.branches {
				if s.branches[i].Value == b.Value {
					s.branches[i].Node = b.Node
				}
			}
		} else {
			s.branches = append(s.branches, b)
		}
		s.children[b.Value] = b.Node
	}
	return s
}

// Feature returns the name of the feature the split asks about.
func (s *Split) Feature() string {
	return s.feature
}

// Child returns the subtree for the given value and whether there is one.
func (s *Split) Child(v feature.Value) (Node, bool) {
	n, ok := s.children[v]
	return n, ok
}

// Branches returns a copy of the split's branches in the order they
// were given to NewSplit.
func (s *Split) Branches() []Branch {
	return append([]Branch(nil), s.branches...)
}

func (*Split) node() {}

/*
Equal reports whether two trees have the same structure: leaves with
equal labels, and splits on the same feature whose branches for each
value are themselves equal. Branch order is irrelevant.
*/
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		return ok && a.label == b.label
	case *Split:
		b, ok := b.(*Split)
		if !ok || a.feature != b.feature || len(a.children) != len(b.children) {
			return false
		}
		for v, an := range a.children {
			bn, ok := b.children[v]
			if !ok || !Equal(an, bn) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
