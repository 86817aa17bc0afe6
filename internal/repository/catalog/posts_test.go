package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

func TestPostsSearch_FiltersByType(t *testing.T) {
	ms := newMockStore()
	ms.add(t, "post", "p1", postDoc{ID: "p1", Type: "regular", Caption: "sunset", IsPublic: true})
	ms.add(t, "post", "p2", postDoc{ID: "p2", Type: "market", Caption: "vintage jacket", IsPublic: true, PriceCents: 4500})

	repo := NewPosts(ms, testPrefix)

	social, err := repo.Search(context.Background(), catalog.PostRegular, "viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(social) != 1 || social[0].ID != "p1" {
		t.Errorf("unexpected social posts: %v", social)
	}

	market, err := repo.Search(context.Background(), catalog.PostMarket, "viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(market) != 1 || market[0].ID != "p2" {
		t.Errorf("unexpected market posts: %v", market)
	}
	if market[0].PriceCents != 4500 {
		t.Errorf("expected price 4500, got %d", market[0].PriceCents)
	}
}

func TestPostsSearch_VisibilityGate(t *testing.T) {
	ms := newMockStore()
	ms.add(t, "post", "pub", postDoc{ID: "pub", Type: "regular", IsPublic: true, OwnerID: "alice"})
	ms.add(t, "post", "own", postDoc{ID: "own", Type: "regular", IsPublic: false, OwnerID: "bob"})
	ms.add(t, "post", "hidden", postDoc{ID: "hidden", Type: "regular", IsPublic: false, OwnerID: "alice"})

	repo := NewPosts(ms, testPrefix)
	posts, err := repo.Search(context.Background(), catalog.PostRegular, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("expected 2 visible posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.ID == "hidden" {
			t.Error("another user's private post leaked through the gate")
		}
		if !p.IsPublic && p.OwnerID != "bob" {
			t.Errorf("post %s violates the visibility invariant", p.ID)
		}
	}
}

func TestPostsSearch_AuthorDenormalized(t *testing.T) {
	ms := newMockStore()
	ms.add(t, "post", "p1", postDoc{
		ID: "p1", Type: "regular", IsPublic: true,
		Author: userRefDoc{ID: "u1", Username: "nike_fan", Name: "Nike Fan", ProfilePicture: "pic.jpg"},
	})

	repo := NewPosts(ms, testPrefix)
	posts, err := repo.Search(context.Background(), catalog.PostRegular, "viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	a := posts[0].Author
	if a.ID != "u1" || a.Username != "nike_fan" || a.Name != "Nike Fan" || a.ProfilePicture != "pic.jpg" {
		t.Errorf("unexpected author ref: %+v", a)
	}
}

func TestPostsSearch_StoreError(t *testing.T) {
	ms := newMockStore()
	ms.mgetErr = errors.New("connection reset")
	ms.sets[setKey(testPrefix, "post")] = []string{"p1"}

	repo := NewPosts(ms, testPrefix)
	if _, err := repo.Search(context.Background(), catalog.PostRegular, "viewer"); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
