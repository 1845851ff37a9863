/*
Package set holds what dataset readers share: turning the raw values
read from a source into records laid out as described by a
feature.Metadata.
*/
package set

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
UndefinedValue is the placeholder used by CSV files for values that
are not known. ID3 trees cannot be grown from records with undefined
values, so readers reject them.
*/
const UndefinedValue = "?"

/*
ParseRecord takes metadata and the raw strings for each of its columns
(features followed by the class, as returned by md.Columns()) and
returns the record they represent or an error if any of them is
undefined or cannot be parsed as its column's kind.
*/
func ParseRecord(md *feature.Metadata, raw []string) (dataset.Record, error) {
	columns := md.Columns()
	if len(raw) != len(columns) {
		return nil, &dataset.StructuralError{Record: -1, Want: len(columns), Got: len(raw)}
	}
	r := make(dataset.Record, 0, len(raw))
	for i, c := range columns {
		if raw[i] == UndefinedValue {
			return nil, fmt.Errorf("undefined value for %s", c.Name)
		}
		v, err := feature.Parse(c.Kind, raw[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		r = append(r, v)
	}
	return r, nil
}

/*
ConvertRecord works as ParseRecord for sources that return typed
values, such as database drivers. Each value is formatted with its
default format before being parsed, so 3, int64(3) and 3.0 all convert
to the int value 3. Nil values are rejected.
*/
func ConvertRecord(md *feature.Metadata, values []interface{}) (dataset.Record, error) {
	raw := make([]string, 0, len(values))
	columns := md.Columns()
	for i, v := range values {
		if v == nil {
			name := "column"
			if i < len(columns) {
				name = columns[i].Name
			}
			return nil, fmt.Errorf("undefined value for %s", name)
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		raw = append(raw, fmt.Sprint(v))
	}
	return ParseRecord(md, raw)
}

/*
ParseVector takes metadata and the raw strings for each of its feature
columns and returns the feature values they represent, ready to be
classified by a tree grown with md.Labels().
*/
func ParseVector(md *feature.Metadata, raw []string) ([]feature.Value, error) {
	if len(raw) != len(md.Features) {
		return nil, &dataset.StructuralError{Record: -1, Want: len(md.Features), Got: len(raw)}
	}
	vector := make([]feature.Value, 0, len(raw))
	for i, f := range md.Features {
		v, err := feature.Parse(f.Kind, raw[i])
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", f.Name, err)
		}
		vector = append(vector, v)
	}
	return vector, nil
}
