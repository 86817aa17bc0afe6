package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Users implements usecase/search.UserSource.
type Users struct {
	store  store
	prefix string
}

// NewUsers creates a user fetcher.
func NewUsers(s store, prefix string) *Users {
	return &Users{store: s, prefix: prefix}
}

// Search returns all users whose username, display name, or bio contains the
// normalized query or any token (case-insensitive). This is a coarse
// pre-filter; exact ranking math happens in the scorer. Users carry no
// visibility gate.
func (r *Users) Search(ctx context.Context, q string, tokens []string) ([]catalog.User, error) {
	docs, err := loadDocs(ctx, r.store, r.prefix, "user")
	if err != nil {
		return nil, err
	}

	users := make([]catalog.User, 0, len(docs))
	for key, data := range docs {
		var doc userDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		u := doc.toDomain()
		if matchesAny(q, tokens, u.Username, u.Name, u.Bio) {
			users = append(users, u)
		}
	}
	return users, nil
}

// loadDocs reads the membership set for a kind and MGETs all entity values in
// one round-trip. Missing keys (deleted between SMEMBERS and MGET) are
// skipped.
func loadDocs(ctx context.Context, s store, prefix, kind string) (map[string][]byte, error) {
	ids, err := s.SMembers(ctx, setKey(prefix, kind))
	if err != nil {
		return nil, fmt.Errorf("members %s: %w", kind, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entityKey(prefix, kind, id)
	}

	vals, err := s.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget %s: %w", kind, err)
	}

	docs := make(map[string][]byte, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		docs[keys[i]] = v
	}
	return docs, nil
}

// matchesAny reports whether any field contains the query or any token,
// case-insensitively.
func matchesAny(q string, tokens []string, fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		lf := strings.ToLower(f)
		if q != "" && strings.Contains(lf, q) {
			return true
		}
		for _, t := range tokens {
			if strings.Contains(lf, t) {
				return true
			}
		}
	}
	return false
}
