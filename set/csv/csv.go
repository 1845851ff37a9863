/*
Package csv reads datasets from and writes them to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set"
)

/*
ReadDataset takes an io.Reader for a CSV stream and the metadata
describing its columns and returns the dataset parsed from it, laid
out as md.Columns(), or an error.

The header or first row of the CSV content must name every column of
the metadata; the columns may appear in any order and columns not in
the metadata are ignored. The rest of the rows must consist of values
valid for their columns' kinds.
*/
func ReadDataset(reader io.Reader, md *feature.Metadata) (dataset.Dataset, error) {
	var d dataset.Dataset
	err := ReadDatasetByRecord(reader, md, func(_ int, r dataset.Record) (bool, error) {
		d = append(d, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

/*
ReadDatasetByRecord takes an io.Reader for a CSV stream, the metadata
describing its columns and a lambda function on an integer and a
dataset.Record that returns a boolean value. It parses the records from
the reader and for each it calls the lambda function with its index and
the record. If the lambda function returns true, it will continue
processing the next record, otherwise it will stop. An error is returned
if something goes wrong when reading the stream or parsing a record.
*/
func ReadDatasetByRecord(reader io.Reader, md *feature.Metadata, lambda func(int, dataset.Record) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	positions, err := columnPositions(header, md)
	if err != nil {
		return err
	}
	raw := make([]string, len(positions))
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		for i, p := range positions {
			raw[i] = row[p]
		}
		record, err := set.ParseRecord(md, raw)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", l, err)
		}
		ok, err := lambda(l-2, record)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath string and metadata, opens the
file to which the filepath points (os.Stdin if it is "") and uses
ReadDataset to return the dataset read from it or an error.
*/
func ReadDatasetFromFilePath(filepath string, md *feature.Metadata) (dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV file: %w", err)
		}
		defer f.Close()
	}
	d, err := ReadDataset(f, md)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, err
}

/*
WriteDataset takes a writer, a dataset and the metadata describing its
columns and dumps the dataset to the writer in CSV format, with a
header naming the columns. It returns an error if a record does not
match the metadata or something goes wrong when writing.
*/
func WriteDataset(writer io.Writer, d dataset.Dataset, md *feature.Metadata) error {
	w := csv.NewWriter(writer)
	columns := md.Columns()
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = c.Name
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range d {
		if len(r) != len(columns) {
			return &dataset.StructuralError{Record: i, Want: len(columns), Got: len(r)}
		}
		for j, v := range r {
			row[j] = v.String()
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for record %d: %w", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func columnPositions(header []string, md *feature.Metadata) ([]int, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}
	columns := md.Columns()
	positions := make([]int, len(columns))
	for i, c := range columns {
		p, ok := byName[c.Name]
		if !ok {
			return nil, fmt.Errorf("parsing header: column %s not found", c.Name)
		}
		positions[i] = p
	}
	return positions, nil
}
