package dataset

import "fmt"

// Error represents an error on the input given to a dataset operation.
type Error string

/*
ErrEmptyDataset is the error returned by operations that cannot
produce a result out of a dataset without records, such as Entropy.
*/
const ErrEmptyDataset = Error("empty dataset")

func (e Error) Error() string {
	return string(e)
}

/*
StructuralError is returned when a record does not have the shape
expected by an operation: Record is its index (or -1 when the record
is not part of a dataset), Want the expected length and Got the
actual one.
*/
type StructuralError struct {
	Record int
	Want   int
	Got    int
}

func (se *StructuralError) Error() string {
	if se.Record < 0 {
		return fmt.Sprintf("malformed record: expected %d values, got %d", se.Want, se.Got)
	}
	return fmt.Sprintf("malformed record %d: expected %d values, got %d", se.Record, se.Want, se.Got)
}
