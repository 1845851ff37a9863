/*
Package redisstore provides an implementation of tree.Store that keeps
JSON-encoded trees on a Redis database.
*/
package redisstore

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
)

// DefaultPrefix is the prefix of the keys trees are stored under
// unless WithPrefix is given.
const DefaultPrefix = "id3:tree"

type redisStore struct {
	rc     *backend.Client
	prefix string
	owned  bool
}

// Option configures a store built with New or NewFromClient.
type Option func(*redisStore)

// WithPrefix sets the prefix of the keys trees are stored under.
func WithPrefix(prefix string) Option {
	return func(rs *redisStore) {
		rs.prefix = prefix
	}
}

/*
New takes a Redis URL (redis://[user:password@]host:port/db) and returns
a tree.Store backed by that Redis DB, or an error if the URL is invalid.
Closing the store closes the underlying client.
*/
func New(url string, opts ...Option) (tree.Store, error) {
	o, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rs := newStore(backend.NewClient(o), opts)
	rs.owned = true
	return rs, nil
}

// NewFromClient builds a tree.Store on an existing Redis client, which
// is left open when the store is closed.
func NewFromClient(rc *backend.Client, opts ...Option) tree.Store {
	return newStore(rc, opts)
}

func newStore(rc *backend.Client, opts []Option) *redisStore {
	rs := &redisStore{rc: rc, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *redisStore) Put(ctx context.Context, name string, t *tree.Tree) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("storing tree %q: %w", name, err)
	}
	err = rs.rc.Set(ctx, rs.keyFor(name), data, 0).Err()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %w", name, err)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, name string) (*tree.Tree, error) {
	data, err := rs.rc.Get(ctx, rs.keyFor(name)).Bytes()
	if err == backend.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q from redis: %w", name, err)
	}
	t, err := json.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %w", name, err)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	err := rs.rc.Del(ctx, rs.keyFor(name)).Err()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %w", name, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	if rs.owned {
		return rs.rc.Close()
	}
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
