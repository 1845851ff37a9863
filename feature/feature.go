/*
Package feature defines the discrete values records are made of and the
names of the feature columns they are laid out in.
*/
package feature

import (
	"fmt"
	"strings"
)

/*
Labels is an ordered sequence of feature names, one per feature column
of a dataset. Labels values are never modified: operations that remove
a name return a new sequence, so a Labels can be handed to several
recursive calls without any of them observing changes made by another.
*/
type Labels struct {
	names []string
}

// NewLabels returns Labels holding a copy of the given names.
func NewLabels(names ...string) Labels {
	return Labels{append([]string(nil), names...)}
}

// Len returns the number of names in the sequence.
func (l Labels) Len() int {
	return len(l.names)
}

// At returns the name at position i.
func (l Labels) At(i int) string {
	return l.names[i]
}

// Index returns the position of name in the sequence or -1 if absent.
func (l Labels) Index(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return -1
}

/*
Without returns a new Labels with the name at position i removed and
the remaining names in their original order. The receiver is left
untouched.
*/
func (l Labels) Without(i int) Labels {
	names := make([]string, 0, len(l.names)-1)
	names = append(names, l.names[:i]...)
	names = append(names, l.names[i+1:]...)
	return Labels{names}
}

// Names returns a copy of the names in the sequence.
func (l Labels) Names() []string {
	return append([]string(nil), l.names...)
}

// Equal reports whether both sequences hold the same names in the
// same order.
func (l Labels) Equal(o Labels) bool {
	if len(l.names) != len(o.names) {
		return false
	}
	for i, n := range l.names {
		if o.names[i] != n {
			return false
		}
	}
	return true
}

func (l Labels) String() string {
	return fmt.Sprintf("[%s]", strings.Join(l.names, " "))
}

/*
Spec describes a column of a dataset: its name and the kind of the
values it holds.
*/
type Spec struct {
	Name string
	Kind Kind
}

func (s Spec) String() string {
	return fmt.Sprintf("%s(%v)", s.Name, s.Kind)
}

/*
Metadata describes the layout of a dataset: the ordered feature columns
and the class column that holds the label records are classified with.
*/
type Metadata struct {
	Features []Spec
	Class    Spec
}

// Labels returns the names of the metadata's features in order.
func (md *Metadata) Labels() Labels {
	names := make([]string, 0, len(md.Features))
	for _, f := range md.Features {
		names = append(names, f.Name)
	}
	return Labels{names}
}

// Columns returns the specs of all columns of a record in order:
// the features followed by the class.
func (md *Metadata) Columns() []Spec {
	return append(append([]Spec(nil), md.Features...), md.Class)
}

/*
Validate returns an error if the metadata has no class, a column
without name, a column with an invalid kind or a name used twice.
*/
func (md *Metadata) Validate() error {
	if md.Class.Name == "" {
		return fmt.Errorf("metadata has no class column")
	}
	seen := make(map[string]bool)
	for _, c := range md.Columns() {
		if c.Name == "" {
			return fmt.Errorf("metadata has a column without name")
		}
		if _, ok := kindNames[c.Kind]; !ok {
			return fmt.Errorf("column %s has invalid kind %v", c.Name, c.Kind)
		}
		if seen[c.Name] {
			return fmt.Errorf("column %s is defined more than once", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
