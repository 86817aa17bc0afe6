package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces (ISP); the facade exists for
// the composition root.
type Store interface {
	Pinger
	KVReader
	KVWriter
	SetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVReader provides read access to string values.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// MGet fetches multiple keys in one round-trip. Missing keys yield nil
	// entries at their positions.
	MGet(ctx context.Context, keys []string) ([][]byte, error)
}

// KVWriter provides write access to string values (used by seeding, not the
// search path).
type KVWriter interface {
	Set(ctx context.Context, key string, value []byte) error
}

// SetStore provides membership-set operations.
type SetStore interface {
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}
