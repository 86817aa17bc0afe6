// Package rank orders scored candidates deterministically.
package rank

import (
	"sort"
	"time"
)

// Item pairs a candidate with its score and the keys used for ordering.
type Item[T any] struct {
	Value     T
	ID        string
	Score     int
	CreatedAt time.Time
}

// Sort drops zero-score items and orders the rest by score descending, then
// createdAt descending (newer wins), then ID descending. The explicit
// tertiary key keeps ordering deterministic regardless of sort stability.
func Sort[T any](items []Item[T]) []Item[T] {
	ranked := make([]Item[T], 0, len(items))
	for _, it := range items {
		if it.Score > 0 {
			ranked = append(ranked, it)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return ranked
}

// Values unwraps the ranked candidates in order.
func Values[T any](items []Item[T]) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}
