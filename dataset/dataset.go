/*
Package dataset provides the in-memory tabular data trees are grown
from, along with the entropy and partitioning operations the growth
relies on.
*/
package dataset

import (
	"math"

	"github.com/pbanos/id3/feature"
)

/*
Record is a row of a dataset: the values for each of its feature
columns followed by a trailing class label.
*/
type Record []feature.Value

// Label returns the trailing class label of the record.
func (r Record) Label() feature.Value {
	return r[len(r)-1]
}

// Features returns the feature values of the record, without its label.
func (r Record) Features() []feature.Value {
	return r[:len(r)-1]
}

/*
Dataset is an ordered collection of records. All records on a dataset
are expected to have the same length; Validate checks it.
*/
type Dataset []Record

/*
FeatureCount returns the number of feature columns of the dataset, that
is, the length of its first record minus the label column. It returns 0
for an empty dataset.
*/
func (d Dataset) FeatureCount() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0]) - 1
}

/*
Validate returns a *StructuralError for the first record whose length
differs from the first record's or that has no label at all, or nil if
the dataset is consistent.
*/
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return nil
	}
	want := len(d[0])
	for i, r := range d {
		if len(r) != want || len(r) == 0 {
			return &StructuralError{Record: i, Want: want, Got: len(r)}
		}
	}
	return nil
}

/*
Entropy returns the Shannon entropy in bits of the dataset's class
labels: a measure of the disinformation we have on the classes of
records that belong to it. A dataset whose records share a single label
has an entropy of exactly 0. An empty dataset has no defined entropy,
so ErrEmptyDataset is returned for it.
*/
func (d Dataset) Entropy() (float64, error) {
	if len(d) == 0 {
		return 0.0, ErrEmptyDataset
	}
	var result float64
	count := float64(len(d))
	for _, c := range d.ClassCounts() {
		p := float64(c) / count
		result -= p * math.Log2(p)
	}
	return result, nil
}

/*
Split takes a column index and a value and returns a new dataset with
the records whose value at that column equals the given one, with the
column removed from each of them. The remaining columns keep their
order and the label stays last. The receiver is not modified. If no
record matches, an empty dataset is returned.
*/
func (d Dataset) Split(column int, value feature.Value) Dataset {
	var result Dataset
	for _, r := range d {
		if r[column] != value {
			continue
		}
		reduced := make(Record, 0, len(r)-1)
		reduced = append(reduced, r[:column]...)
		reduced = append(reduced, r[column+1:]...)
		result = append(result, reduced)
	}
	return result
}

/*
Values returns the distinct values found on the given column, in the
order they are first encountered on the dataset.
*/
func (d Dataset) Values(column int) []feature.Value {
	var result []feature.Value
	encountered := make(map[feature.Value]bool)
	for _, r := range d {
		v := r[column]
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result
}

// Labels returns the distinct class labels of the dataset in the order
// they are first encountered.
func (d Dataset) Labels() []feature.Value {
	if len(d) == 0 {
		return nil
	}
	return d.Values(len(d[0]) - 1)
}

// ClassCounts returns the number of records for each class label.
func (d Dataset) ClassCounts() map[feature.Value]int {
	result := make(map[feature.Value]int)
	for _, r := range d {
		result[r.Label()]++
	}
	return result
}

/*
Pure returns the label shared by all records of the dataset and true,
or the zero Value and false if the dataset is empty or has records with
different labels.
*/
func (d Dataset) Pure() (feature.Value, bool) {
	if len(d) == 0 {
		return feature.Value{}, false
	}
	label := d[0].Label()
	for _, r := range d[1:] {
		if r.Label() != label {
			return feature.Value{}, false
		}
	}
	return label, true
}

/*
Majority returns the most frequent class label of the dataset. Ties
are broken in favour of the label encountered first. ErrEmptyDataset
is returned for an empty dataset.
*/
func (d Dataset) Majority() (feature.Value, error) {
	if len(d) == 0 {
		return feature.Value{}, ErrEmptyDataset
	}
	counts := d.ClassCounts()
	var result feature.Value
	best := 0
	for _, l := range d.Labels() {
		if counts[l] > best {
			result = l
			best = counts[l]
		}
	}
	return result, nil
}
