/*
Package yaml provides methods to parse feature.Metadata, the layout
of a dataset, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

type column struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type document struct {
	Features []column `yaml:"features"`
	Class    *column  `yaml:"class"`
}

/*
ReadMetadata takes a slice of bytes with a dataset layout in YAML and
returns the metadata parsed from it or an error.
The YAML is expected to be an object with two properties:
  * features: a list of objects with the name and kind of each feature
    column, in the order the columns are laid out on records
  * class: an object with the name and kind of the class column
Valid kinds are string, int and bool. A missing kind means string.
*/
func ReadMetadata(b []byte) (*feature.Metadata, error) {
	doc := &document{}
	err := yaml.UnmarshalStrict(b, doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %w", err)
	}
	if doc.Class == nil {
		return nil, fmt.Errorf("metadata has no class information")
	}
	md := &feature.Metadata{Features: make([]feature.Spec, 0, len(doc.Features))}
	for _, c := range doc.Features {
		s, err := c.spec()
		if err != nil {
			return nil, err
		}
		md.Features = append(md.Features, s)
	}
	md.Class, err = doc.Class.spec()
	if err != nil {
		return nil, err
	}
	if err = md.Validate(); err != nil {
		return nil, err
	}
	return md, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	b, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %w", filepath, err)
	}
	md, err := ReadMetadata(b)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %w", filepath, err)
	}
	return md, err
}

/*
WriteMetadata takes metadata and returns its YAML representation,
readable by ReadMetadata.
*/
func WriteMetadata(md *feature.Metadata) ([]byte, error) {
	doc := &document{Class: &column{md.Class.Name, md.Class.Kind.String()}}
	for _, f := range md.Features {
		doc.Features = append(doc.Features, column{f.Name, f.Kind.String()})
	}
	return yaml.Marshal(doc)
}

func (c *column) spec() (feature.Spec, error) {
	if c.Kind == "" {
		return feature.Spec{Name: c.Name, Kind: feature.KindString}, nil
	}
	k, err := feature.ParseKind(c.Kind)
	if err != nil {
		return feature.Spec{}, fmt.Errorf("column %s: %w", c.Name, err)
	}
	return feature.Spec{Name: c.Name, Kind: k}, nil
}
