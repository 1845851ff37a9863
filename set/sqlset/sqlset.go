package sqlset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set"
)

// DefaultTable is the name of the table records are read from when
// no other is given.
const DefaultTable = "samples"

/*
OpenSQLite3 takes a path to an SQLite3 database file and returns a
*sql.DB that works on the file's database or an error if it fails to
open it.
*/
func OpenSQLite3(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %w", path, err)
	}
	return db, nil
}

/*
OpenPostgreSQL takes a PostgreSQL database connection URL and returns a
*sql.DB that works on the database or an error if it fails to connect
to it.
*/
func OpenPostgreSQL(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgresql database: %w", err)
	}
	return db, nil
}

/*
ReadDataset takes a context, a database, the name of a table and the
metadata describing the columns to read and returns the dataset made
of every row of the table, laid out as md.Columns(). Rows are read in
the order the database returns them. NULL values are rejected.
*/
func ReadDataset(ctx context.Context, db *sql.DB, table string, md *feature.Metadata) (dataset.Dataset, error) {
	query, err := selectStatement(table, md)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", table, err)
	}
	defer rows.Close()
	columns := md.Columns()
	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	var d dataset.Dataset
	for rows.Next() {
		if err = rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %w", len(d)+1, table, err)
		}
		r, err := set.ConvertRecord(md, values)
		if err != nil {
			return nil, fmt.Errorf("parsing row %d of table %s: %w", len(d)+1, table, err)
		}
		d = append(d, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return d, nil
}

func selectStatement(table string, md *feature.Metadata) (string, error) {
	identifiers := make([]string, 0, len(md.Features)+1)
	for _, c := range md.Columns() {
		id, err := quoteIdentifier(c.Name)
		if err != nil {
			return "", err
		}
		identifiers = append(identifiers, id)
	}
	t, err := quoteIdentifier(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(identifiers, ", "), t), nil
}

func quoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return `"` + name + `"`, nil
}
