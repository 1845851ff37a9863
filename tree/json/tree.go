/*
Package json serializes decision trees as JSON documents and reads
them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

type jsonTree struct {
	Features []string  `json:"features"`
	Class    string    `json:"class,omitempty"`
	Root     *jsonNode `json:"root"`
}

type jsonNode struct {
	Label    *feature.Value `json:"label,omitempty"`
	Feature  string         `json:"feature,omitempty"`
	Branches []*jsonBranch  `json:"branches,omitempty"`
}

type jsonBranch struct {
	Value feature.Value `json:"value"`
	Node  *jsonNode     `json:"node"`
}

/*
Encode takes an io.Writer and a tree and writes a JSON representation
of the tree onto the writer.
A tree is serialized as a JSON object with the following fields:
  * "features": an array with the names of the features the tree was
    grown with, in order
  * "class": the name of the class the tree predicts
  * "root": the root node of the tree
Leaves are serialized as an object with a "label" property, and splits
as an object with a "feature" property and a "branches" array, each
branch being an object with a "value" and a "node". Values are
serialized with their kind as done by feature.Value's MarshalJSON.
An error is returned if the tree cannot be serialized or written onto
the io.Writer.
*/
func Encode(w io.Writer, t *tree.Tree) error {
	b, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// Marshal returns the JSON representation of the tree as written by Encode.
func Marshal(t *tree.Tree) ([]byte, error) {
	root, err := encodeNode(t.Root)
	if err != nil {
		return nil, fmt.Errorf("serializing tree as JSON: %w", err)
	}
	return json.Marshal(&jsonTree{Features: t.Features.Names(), Class: t.Class, Root: root})
}

/*
Decode takes an io.Reader and attempts to read a tree serialized by
Encode from it. It returns the read tree or an error if the JSON cannot
be decoded or any node is neither a valid leaf nor a valid split.
*/
func Decode(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	return fromJSON(jt)
}

// Unmarshal parses a tree serialized by Marshal.
func Unmarshal(b []byte) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(b, jt)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	return fromJSON(jt)
}

func fromJSON(jt *jsonTree) (*tree.Tree, error) {
	if jt.Root == nil {
		return nil, fmt.Errorf("decoding json tree: no root node available")
	}
	root, err := decodeNode(jt.Root)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	return tree.New(root, feature.NewLabels(jt.Features...), jt.Class), nil
}

func encodeNode(n tree.Node) (*jsonNode, error) {
	switch n := n.(type) {
	case *tree.Leaf:
		label := n.Label()
		return &jsonNode{Label: &label}, nil
	case *tree.Split:
		jn := &jsonNode{Feature: n.Feature()}
		for _, b := range n.Branches() {
			child, err := encodeNode(b.Node)
			if err != nil {
				return nil, err
			}
			jn.Branches = append(jn.Branches, &jsonBranch{b.Value, child})
		}
		return jn, nil
	}
	return nil, fmt.Errorf("unknown node type %T", n)
}

func decodeNode(jn *jsonNode) (tree.Node, error) {
	if jn.Label != nil {
		if jn.Feature != "" || len(jn.Branches) > 0 {
			return nil, fmt.Errorf("node with label %v also has split information", *jn.Label)
		}
		return tree.NewLeaf(*jn.Label), nil
	}
	if jn.Feature == "" {
		return nil, fmt.Errorf("node has neither label nor feature")
	}
	if len(jn.Branches) == 0 {
		return nil, fmt.Errorf("split on %s has no branches", jn.Feature)
	}
	branches := make([]tree.Branch, 0, len(jn.Branches))
	for _, jb := range jn.Branches {
		if jb == nil || jb.Node == nil {
			return nil, fmt.Errorf("split on %s has a branch without node", jn.Feature)
		}
		if !jb.Value.Valid() {
			return nil, fmt.Errorf("split on %s has a branch without value", jn.Feature)
		}
		child, err := decodeNode(jb.Node)
		if err != nil {
			return nil, err
		}
		branches = append(branches, tree.Branch{Value: jb.Value, Node: child})
	}
	return tree.NewSplit(jn.Feature, branches...), nil
}
