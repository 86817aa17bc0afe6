package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Seeder writes catalog fixtures into the store. The search path never
// writes; this exists for local/dev environments and integration tests.
type Seeder struct {
	store  writeStore
	prefix string
}

// NewSeeder creates a fixture seeder.
func NewSeeder(s writeStore, prefix string) *Seeder {
	return &Seeder{store: s, prefix: prefix}
}

// PutUsers stores users and registers their IDs in the membership set.
func (s *Seeder) PutUsers(ctx context.Context, users []catalog.User) error {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if err := s.put(ctx, "user", u.ID, userDocFromDomain(u)); err != nil {
			return err
		}
		ids = append(ids, u.ID)
	}
	return s.register(ctx, "user", ids)
}

// PutPosts stores posts and registers their IDs in the membership set.
func (s *Seeder) PutPosts(ctx context.Context, posts []catalog.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if err := s.put(ctx, "post", p.ID, postDocFromDomain(p)); err != nil {
			return err
		}
		ids = append(ids, p.ID)
	}
	return s.register(ctx, "post", ids)
}

// PutQuilts stores quilts (with their full patch lists) and registers their
// IDs in the membership set.
func (s *Seeder) PutQuilts(ctx context.Context, quilts []catalog.Quilt) error {
	ids := make([]string, 0, len(quilts))
	for _, q := range quilts {
		if err := s.put(ctx, "quilt", q.ID, quiltDocFromDomain(q)); err != nil {
			return err
		}
		ids = append(ids, q.ID)
	}
	return s.register(ctx, "quilt", ids)
}

func (s *Seeder) put(ctx context.Context, kind, id string, doc any) error {
	if id == "" {
		return fmt.Errorf("%s with empty id", kind)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s %s: %w", kind, id, err)
	}
	if err := s.store.Set(ctx, entityKey(s.prefix, kind, id), data); err != nil {
		return fmt.Errorf("set %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *Seeder) register(ctx context.Context, kind string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.store.SAdd(ctx, setKey(s.prefix, kind), ids...); err != nil {
		return fmt.Errorf("register %ss: %w", kind, err)
	}
	return nil
}
