package search

import (
	"context"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// UserSource loads user candidates coarsely matching the query. The engine
// re-scores them; the source only pre-filters.
type UserSource interface {
	Search(ctx context.Context, q string, tokens []string) ([]catalog.User, error)
}

// PostSource loads post candidates of one type that are visible to the viewer.
type PostSource interface {
	Search(ctx context.Context, typ catalog.PostType, viewerID string) ([]catalog.Post, error)
}

// QuiltSource loads quilt candidates visible to the viewer.
type QuiltSource interface {
	Search(ctx context.Context, viewerID string) ([]catalog.Quilt, error)
}
