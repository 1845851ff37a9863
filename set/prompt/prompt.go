/*
Package prompt reads vectors of feature values interactively, one value
per line, asking for each of them before reading it.
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/id3/feature"
)

/*
Requester represents a way to ask for feature values and to reject
the values given.
*/
type Requester interface {
	RequestValueFor(feature.Spec) error
	RejectValueFor(feature.Spec, string, error) error
}

/*
ReadVector takes an io.Reader, the metadata describing the features
to read and a Requester, and returns a vector with a value for each
of md.Features, in order.

Every value is requested with the Requester before reading lines from
the reader until one can be parsed as the feature's kind. Lines that
cannot be parsed are rejected with the Requester's RejectValueFor
method. An error is returned if the reader is exhausted before every
value is read, or if the Requester returns one.
*/
func ReadVector(r io.Reader, md *feature.Metadata, requester Requester) ([]feature.Value, error) {
	scanner := bufio.NewScanner(r)
	vector := make([]feature.Value, 0, len(md.Features))
	for _, f := range md.Features {
		if err := requester.RequestValueFor(f); err != nil {
			return nil, err
		}
		v, err := readValue(scanner, f, requester)
		if err != nil {
			return nil, err
		}
		vector = append(vector, v)
	}
	return vector, nil
}

func readValue(scanner *bufio.Scanner, f feature.Spec, requester Requester) (feature.Value, error) {
	for scanner.Scan() {
		line := scanner.Text()
		v, err := feature.Parse(f.Kind, line)
		if err == nil {
			return v, nil
		}
		if err = requester.RejectValueFor(f, line, err); err != nil {
			return feature.Value{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return feature.Value{}, err
	}
	return feature.Value{}, fmt.Errorf("EOF when requesting value for %s", f.Name)
}

type writerRequester struct {
	w io.Writer
}

// NewWriterRequester returns a Requester that prints its requests and
// rejections on w.
func NewWriterRequester(w io.Writer) Requester {
	return &writerRequester{w}
}

func (wr *writerRequester) RequestValueFor(f feature.Spec) error {
	_, err := fmt.Fprintf(wr.w, "Enter a %v value for %s: ", f.Kind, f.Name)
	return err
}

func (wr *writerRequester) RejectValueFor(f feature.Spec, line string, reason error) error {
	_, err := fmt.Fprintf(wr.w, "Invalid value %q for %s (%v), try again: ", line, f.Name, reason)
	return err
}
