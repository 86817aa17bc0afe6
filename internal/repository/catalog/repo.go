// Package catalog loads candidate projections from the store. Each fetcher
// returns the full eligible candidate set for a query: scoring is not
// representable as a store-level predicate, so the engine ranks in memory and
// paginates afterwards.
package catalog

import "context"

// store is the consumer interface for catalog reads (ISP).
type store interface {
	SMembers(ctx context.Context, key string) ([]string, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
}

// writeStore is the consumer interface for seeding (not used on the search path).
type writeStore interface {
	Set(ctx context.Context, key string, value []byte) error
	SAdd(ctx context.Context, key string, members ...string) error
}

func entityKey(prefix, kind, id string) string {
	return prefix + kind + ":" + id
}

func setKey(prefix, kind string) string {
	return prefix + kind + "s"
}
