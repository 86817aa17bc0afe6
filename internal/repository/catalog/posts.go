package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Posts implements usecase/search.PostSource.
type Posts struct {
	store  store
	prefix string
}

// NewPosts creates a post fetcher.
func NewPosts(s store, prefix string) *Posts {
	return &Posts{store: s, prefix: prefix}
}

// Search returns all posts of the given type that pass the public-or-owned
// visibility gate for the viewer.
func (r *Posts) Search(ctx context.Context, typ catalog.PostType, viewerID string) ([]catalog.Post, error) {
	docs, err := loadDocs(ctx, r.store, r.prefix, "post")
	if err != nil {
		return nil, err
	}

	posts := make([]catalog.Post, 0, len(docs))
	for key, data := range docs {
		var doc postDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		p := doc.toDomain()
		if p.Type != typ {
			continue
		}
		if !p.VisibleTo(viewerID) {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}
