package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set/prompt"
)

var md = &feature.Metadata{
	Features: []feature.Spec{
		{Name: "legs", Kind: feature.KindInt},
		{Name: "flies", Kind: feature.KindBool},
	},
	Class: feature.Spec{Name: "animal", Kind: feature.KindString},
}

func TestReadVector(t *testing.T) {
	out := &bytes.Buffer{}
	v, err := prompt.ReadVector(strings.NewReader("two\n2\ntrue\n"), md, prompt.NewWriterRequester(out))
	require.NoError(t, err)
	assert.Equal(t, []feature.Value{feature.Int(2), feature.Bool(true)}, v)
	assert.Contains(t, out.String(), "Enter a int value for legs: ")
	assert.Contains(t, out.String(), `Invalid value "two" for legs`)
	assert.Contains(t, out.String(), "Enter a bool value for flies: ")
}

func TestReadVectorEOF(t *testing.T) {
	_, err := prompt.ReadVector(strings.NewReader("2\n"), md, prompt.NewWriterRequester(&bytes.Buffer{}))
	assert.Error(t, err)
}
