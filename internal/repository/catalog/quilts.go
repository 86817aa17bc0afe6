package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Quilts implements usecase/search.QuiltSource.
type Quilts struct {
	store  store
	prefix string
}

// NewQuilts creates a quilt fetcher.
func NewQuilts(s store, prefix string) *Quilts {
	return &Quilts{store: s, prefix: prefix}
}

// Search returns all quilts that pass the public-or-owned visibility gate,
// each carrying its owner reference, up to the first nine patch preview
// images, and the total patch count.
func (r *Quilts) Search(ctx context.Context, viewerID string) ([]catalog.Quilt, error) {
	docs, err := loadDocs(ctx, r.store, r.prefix, "quilt")
	if err != nil {
		return nil, err
	}

	quilts := make([]catalog.Quilt, 0, len(docs))
	for key, data := range docs {
		var doc quiltDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		q := doc.toDomain()
		if !q.VisibleTo(viewerID) {
			continue
		}
		quilts = append(quilts, q)
	}
	return quilts, nil
}
