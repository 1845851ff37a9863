package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set/csv"
	"github.com/pbanos/id3/set/mongoset"
	"github.com/pbanos/id3/set/sqlset"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/redisstore"
)

const defaultTreeName = "default"

/*
readDataset reads the dataset described by md from input, which may be
  * "": CSV from the given stdin
  * a PostgreSQL connection URL (postgres:// or postgresql://)
  * a MongoDB connection URL (mongodb://)
  * a path to an SQLite3 file (.db, .sqlite or .sqlite3 extension)
  * a path to a CSV file otherwise
table is the table or collection to read from for databases.
*/
func readDataset(ctx context.Context, logger *slog.Logger, stdin io.Reader, input, table string, md *feature.Metadata) (dataset.Dataset, error) {
	switch {
	case input == "":
		logger.Debug("reading dataset from STDIN")
		return csv.ReadDataset(stdin, md)
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		logger.Debug("reading dataset from PostgreSQL", "table", tableOr(table, sqlset.DefaultTable))
		db, err := sqlset.OpenPostgreSQL(ctx, input)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqlset.ReadDataset(ctx, db, tableOr(table, sqlset.DefaultTable), md)
	case strings.HasPrefix(input, "mongodb://"):
		logger.Debug("reading dataset from MongoDB", "collection", tableOr(table, mongoset.DefaultCollection))
		session, err := mongoset.Dial(input)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongoset.ReadDataset(ctx, session, tableOr(table, mongoset.DefaultCollection), md)
	case hasAnySuffix(input, ".db", ".sqlite", ".sqlite3"):
		logger.Debug("reading dataset from SQLite3", "path", input, "table", tableOr(table, sqlset.DefaultTable))
		db, err := sqlset.OpenSQLite3(input)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return sqlset.ReadDataset(ctx, db, tableOr(table, sqlset.DefaultTable), md)
	}
	logger.Debug("reading dataset from CSV file", "path", input)
	return csv.ReadDatasetFromFilePath(input, md)
}

/*
loadTree reads a tree from location: a redis URL with the name of the
tree as fragment (redis://host:6379/0#name) or a path to a JSON file.
*/
func loadTree(ctx context.Context, location string) (*tree.Tree, error) {
	if isRedisURL(location) {
		store, name, err := openRedisStore(location)
		if err != nil {
			return nil, err
		}
		defer store.Close(ctx)
		t, err := store.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("tree %q not found on redis", name)
		}
		return t, nil
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %w", location, err)
	}
	defer f.Close()
	t, err := json.Decode(f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %w", location, err)
	}
	return t, err
}

// saveTree writes the tree to location, which may be a redis URL or a
// file path as for loadTree, or "" for the given stdout.
func saveTree(ctx context.Context, stdout io.Writer, location string, t *tree.Tree) error {
	if location == "" {
		return json.Encode(stdout, t)
	}
	if isRedisURL(location) {
		store, name, err := openRedisStore(location)
		if err != nil {
			return err
		}
		defer store.Close(ctx)
		return store.Put(ctx, name, t)
	}
	f, err := os.Create(location)
	if err != nil {
		return err
	}
	err = json.Encode(f, t)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func openRedisStore(location string) (tree.Store, string, error) {
	url, name, _ := strings.Cut(location, "#")
	if name == "" {
		name = defaultTreeName
	}
	store, err := redisstore.New(url)
	return store, name, err
}

func isRedisURL(location string) bool {
	return strings.HasPrefix(location, "redis://") || strings.HasPrefix(location, "rediss://")
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func tableOr(table, def string) string {
	if table == "" {
		return def
	}
	return table
}
