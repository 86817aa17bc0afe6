package catalog

import (
	"context"
	"testing"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

func TestSeeder_RoundTrip(t *testing.T) {
	ms := newMockStore()
	seeder := NewSeeder(ms, testPrefix)
	ctx := context.Background()

	users := []catalog.User{{ID: "u1", Username: "nike_fan", CreatedAt: mustTime(t, "2024-01-01T00:00:00Z")}}
	posts := []catalog.Post{{ID: "p1", Type: catalog.PostRegular, Caption: "hello", IsPublic: true}}
	quilts := []catalog.Quilt{{ID: "q1", Name: "stars", IsPublic: true, Patches: []catalog.Patch{{ImageURL: "a.jpg"}}}}

	if err := seeder.PutUsers(ctx, users); err != nil {
		t.Fatalf("PutUsers: %v", err)
	}
	if err := seeder.PutPosts(ctx, posts); err != nil {
		t.Fatalf("PutPosts: %v", err)
	}
	if err := seeder.PutQuilts(ctx, quilts); err != nil {
		t.Fatalf("PutQuilts: %v", err)
	}

	got, err := NewUsers(ms, testPrefix).Search(ctx, "nike", []string{"nike"})
	if err != nil {
		t.Fatalf("Search users: %v", err)
	}
	if len(got) != 1 || got[0].Username != "nike_fan" {
		t.Errorf("unexpected users after seeding: %v", got)
	}

	gotQuilts, err := NewQuilts(ms, testPrefix).Search(ctx, "viewer")
	if err != nil {
		t.Fatalf("Search quilts: %v", err)
	}
	if len(gotQuilts) != 1 || gotQuilts[0].PatchCount != 1 {
		t.Errorf("unexpected quilts after seeding: %v", gotQuilts)
	}
}

func TestSeeder_EmptyIDRejected(t *testing.T) {
	seeder := NewSeeder(newMockStore(), testPrefix)
	err := seeder.PutUsers(context.Background(), []catalog.User{{Username: "noid"}})
	if err == nil {
		t.Fatal("expected error for empty id")
	}
}
