package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

const testPrefix = "quiltly:"

// mockStore implements the consumer interfaces for tests, backed by plain maps.
type mockStore struct {
	sets   map[string][]string
	values map[string][]byte

	smembersErr error
	mgetErr     error

	setCalls  []string
	saddCalls []string
}

func newMockStore() *mockStore {
	return &mockStore{
		sets:   make(map[string][]string),
		values: make(map[string][]byte),
	}
}

func (m *mockStore) SMembers(_ context.Context, key string) ([]string, error) {
	if m.smembersErr != nil {
		return nil, m.smembersErr
	}
	return m.sets[key], nil
}

func (m *mockStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	if m.mgetErr != nil {
		return nil, m.mgetErr
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.values[k]
	}
	return out, nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	m.values[key] = value
	m.setCalls = append(m.setCalls, key)
	return nil
}

func (m *mockStore) SAdd(_ context.Context, key string, members ...string) error {
	m.sets[key] = append(m.sets[key], members...)
	m.saddCalls = append(m.saddCalls, key)
	return nil
}

func (m *mockStore) add(t *testing.T, kind, id string, doc any) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	m.values[entityKey(testPrefix, kind, id)] = data
	m.sets[setKey(testPrefix, kind)] = append(m.sets[setKey(testPrefix, kind)], id)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return ts
}
