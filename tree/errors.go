package tree

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

// ClassificationError represents an error related with classifications
type ClassificationError string

/*
ErrMissingValue is the error wrapped by the errors returned when
classifying a vector whose value for a split's feature has no branch,
because it was never observed for that feature when growing the tree.
*/
const ErrMissingValue = ClassificationError("no branch for value")

/*
ErrUnknownFeature is the error wrapped by the errors returned when a
split asks about a feature that is not among the given labels.
*/
const ErrUnknownFeature = ClassificationError("unknown split feature")

func (ce ClassificationError) Error() string {
	return string(ce)
}

/*
MissingValueError is returned when classifying a vector whose value for
the feature of a split reached while walking the tree has no branch.
It matches ErrMissingValue with errors.Is.
*/
type MissingValueError struct {
	Feature string
	Value   feature.Value
}

func (mve *MissingValueError) Error() string {
	return fmt.Sprintf("%v: feature %s has no branch for %v value %v", ErrMissingValue, mve.Feature, mve.Value.Kind(), mve.Value)
}

// Is reports whether target is ErrMissingValue.
func (mve *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
