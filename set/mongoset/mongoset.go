/*
Package mongoset reads datasets from MongoDB collections.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/set"
)

// DefaultCollection is the name of the collection documents are read
// from when no other is given.
const DefaultCollection = "samples"

/*
Dial takes a MongoDB connection URL (mongodb://host/db) and returns a
session on it or an error if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	return session, nil
}

/*
ReadDataset takes a context, a MongoDB session, the name of a
collection on the session's default database and the metadata
describing the fields to read, and returns the dataset made of every
document of the collection, laid out as md.Columns(). Documents missing
any of the fields are rejected. The context is checked between
documents.
*/
func ReadDataset(ctx context.Context, session *mgo.Session, collection string, md *feature.Metadata) (dataset.Dataset, error) {
	projection, err := fieldProjection(md)
	if err != nil {
		return nil, err
	}
	s := session.Copy()
	defer s.Close()
	iter := s.DB("").C(collection).Find(nil).Select(projection).Iter()
	defer iter.Close()
	columns := md.Columns()
	values := make([]interface{}, len(columns))
	var d dataset.Dataset
	var doc bson.M
	for iter.Next(&doc) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for i, c := range columns {
			values[i] = doc[c.Name]
		}
		r, err := set.ConvertRecord(md, values)
		if err != nil {
			return nil, fmt.Errorf("parsing document %v of collection %s: %w", doc["_id"], collection, err)
		}
		d = append(d, r)
		doc = nil
	}
	if err = iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}
	return d, nil
}

func fieldProjection(md *feature.Metadata) (bson.M, error) {
	projection := bson.M{}
	for _, c := range md.Columns() {
		if c.Name == "_id" {
			return nil, fmt.Errorf("invalid feature name %q: reserved collection field", "_id")
		}
		if strings.ContainsAny(c.Name, ".$") {
			return nil, fmt.Errorf("invalid feature name %q: contains reserved characters %q or %q", c.Name, ".", "$")
		}
		projection[c.Name] = 1
	}
	return projection, nil
}
