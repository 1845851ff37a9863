package id3

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// NoFeature is returned by BestFeature when no feature column yields
// a positive information gain.
const NoFeature = -1

/*
Partition represents a partition of a dataset according to one of its
feature columns, with a subset for each value found on the column and
the information gain obtained by predicting the class from them.
*/
type Partition struct {
	Column          int
	Values          []feature.Value
	Subsets         []dataset.Dataset
	InformationGain float64
}

/*
NewPartition takes a dataset, its entropy and a feature column index
and returns the partition of the dataset for that column: one subset
per distinct value on the column, in the order values are first found.
The information gain is the given entropy minus the entropy of each
subset weighted by its share of the dataset's records.
*/
func NewPartition(d dataset.Dataset, entropy float64, column int) (*Partition, error) {
	values := d.Values(column)
	p := &Partition{
		Column:          column,
		Values:          values,
		Subsets:         make([]dataset.Dataset, 0, len(values)),
		InformationGain: entropy,
	}
	total := float64(len(d))
	for _, v := range values {
		subset := d.Split(column, v)
		subsetEntropy, err := subset.Entropy()
		if err != nil {
			return nil, err
		}
		p.Subsets = append(p.Subsets, subset)
		p.InformationGain -= subsetEntropy * float64(len(subset)) / total
	}
	return p, nil
}

/*
BestFeature takes a dataset with at least one feature column and
returns the index of the column whose partition yields the most
information gain, or NoFeature if none yields a positive gain. When
several columns reach the maximum gain, the first one wins.
ErrEmptyDataset is returned for an empty dataset.
*/
func BestFeature(d dataset.Dataset) (int, error) {
	p, err := bestPartition(context.Background(), d, 1)
	if err != nil || p == nil {
		return NoFeature, err
	}
	return p.Column, nil
}

/*
bestPartition computes the partition for every feature column of the
dataset and returns the one with the highest positive information gain,
or nil if none has a positive gain. With more than one worker, columns
are evaluated concurrently; each result is kept in its column's slot and
the scan for the best one runs afterwards in column order, so the
outcome does not depend on the number of workers.
*/
func bestPartition(ctx context.Context, d dataset.Dataset, workers int) (*Partition, error) {
	entropy, err := d.Entropy()
	if err != nil {
		return nil, err
	}
	partitions := make([]*Partition, d.FeatureCount())
	if workers > 1 && len(partitions) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range partitions {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				p, err := NewPartition(d, entropy, i)
				partitions[i] = p
				return err
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range partitions {
			partitions[i], err = NewPartition(d, entropy, i)
			if err != nil {
				return nil, err
			}
		}
	}
	var best *Partition
	for _, p := range partitions {
		if p.InformationGain > 0.0 && (best == nil || p.InformationGain > best.InformationGain) {
			best = p
		}
	}
	return best, nil
}
