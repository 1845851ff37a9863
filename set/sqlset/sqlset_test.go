package sqlset_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set/sqlset"
)

var md = &feature.Metadata{
	Features: []feature.Spec{
		{Name: "no surfacing", Kind: feature.KindInt},
		{Name: "flippers", Kind: feature.KindInt},
	},
	Class: feature.Spec{Name: "fish", Kind: feature.KindString},
}

func TestReadDatasetFromSQLite3(t *testing.T) {
	ctx := context.Background()
	db, err := sqlset.OpenSQLite3(filepath.Join(t.TempDir(), "fish.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE samples ("no surfacing" INTEGER, "flippers" INTEGER, "fish" TEXT, "weight" REAL)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO samples VALUES (1, 1, 'yes', 1.5), (1, 0, 'no', 2.0), (0, 1, 'no', 0.3)`)
	require.NoError(t, err)

	d, err := sqlset.ReadDataset(ctx, db, sqlset.DefaultTable, md)
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset{
		{feature.Int(1), feature.Int(1), feature.String("yes")},
		{feature.Int(1), feature.Int(0), feature.String("no")},
		{feature.Int(0), feature.Int(1), feature.String("no")},
	}, d)
}

func TestReadDatasetRejectsNulls(t *testing.T) {
	ctx := context.Background()
	db, err := sqlset.OpenSQLite3(filepath.Join(t.TempDir(), "fish.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE animals ("no surfacing" INTEGER, "flippers" INTEGER, "fish" TEXT)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO animals VALUES (1, NULL, 'yes')`)
	require.NoError(t, err)

	_, err = sqlset.ReadDataset(ctx, db, "animals", md)
	assert.Error(t, err)

	_, err = sqlset.ReadDataset(ctx, db, "missing", md)
	assert.Error(t, err)

	_, err = sqlset.ReadDataset(ctx, db, `bad"name`, md)
	assert.Error(t, err)
}
