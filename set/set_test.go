package set_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set"
)

var md = &feature.Metadata{
	Features: []feature.Spec{
		{Name: "legs", Kind: feature.KindInt},
		{Name: "flies", Kind: feature.KindBool},
	},
	Class: feature.Spec{Name: "animal", Kind: feature.KindString},
}

func TestParseRecord(t *testing.T) {
	r, err := set.ParseRecord(md, []string{"2", "true", "bird"})
	require.NoError(t, err)
	assert.Equal(t, dataset.Record{feature.Int(2), feature.Bool(true), feature.String("bird")}, r)

	_, err = set.ParseRecord(md, []string{"2", set.UndefinedValue, "bird"})
	assert.Error(t, err)
	_, err = set.ParseRecord(md, []string{"two", "true", "bird"})
	assert.Error(t, err)

	var se *dataset.StructuralError
	_, err = set.ParseRecord(md, []string{"2", "true"})
	assert.True(t, errors.As(err, &se))
}

func TestConvertRecord(t *testing.T) {
	r, err := set.ConvertRecord(md, []interface{}{int64(4), true, []byte("dog")})
	require.NoError(t, err)
	assert.Equal(t, dataset.Record{feature.Int(4), feature.Bool(true), feature.String("dog")}, r)

	_, err = set.ConvertRecord(md, []interface{}{int64(4), nil, "dog"})
	assert.Error(t, err)
}

func TestParseVector(t *testing.T) {
	v, err := set.ParseVector(md, []string{"0", "false"})
	require.NoError(t, err)
	assert.Equal(t, []feature.Value{feature.Int(0), feature.Bool(false)}, v)

	var se *dataset.StructuralError
	_, err = set.ParseVector(md, []string{"0", "false", "fish"})
	assert.True(t, errors.As(err, &se))
}
