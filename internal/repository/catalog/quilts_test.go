package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

func TestQuiltsSearch_VisibilityGate(t *testing.T) {
	ms := newMockStore()
	ms.add(t, "quilt", "pub", quiltDoc{ID: "pub", Name: "stars", IsPublic: true, OwnerID: "alice"})
	ms.add(t, "quilt", "own", quiltDoc{ID: "own", Name: "secret", IsPublic: false, OwnerID: "bob"})
	ms.add(t, "quilt", "hidden", quiltDoc{ID: "hidden", Name: "private", IsPublic: false, OwnerID: "alice"})

	repo := NewQuilts(ms, testPrefix)
	quilts, err := repo.Search(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(quilts) != 2 {
		t.Fatalf("expected 2 visible quilts, got %d", len(quilts))
	}
	for _, q := range quilts {
		if q.ID == "hidden" {
			t.Error("another user's private quilt leaked through the gate")
		}
	}
}

func TestQuiltsSearch_PatchPreviewBounded(t *testing.T) {
	patches := make([]patchDoc, 12)
	for i := range patches {
		patches[i] = patchDoc{ImageURL: fmt.Sprintf("patch-%d.jpg", i)}
	}

	ms := newMockStore()
	ms.add(t, "quilt", "q1", quiltDoc{ID: "q1", Name: "big quilt", IsPublic: true, Patches: patches})

	repo := NewQuilts(ms, testPrefix)
	quilts, err := repo.Search(context.Background(), "viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quilts) != 1 {
		t.Fatalf("expected 1 quilt, got %d", len(quilts))
	}

	q := quilts[0]
	if len(q.Patches) != catalog.MaxPreviewPatches {
		t.Errorf("expected %d preview patches, got %d", catalog.MaxPreviewPatches, len(q.Patches))
	}
	if q.PatchCount != 12 {
		t.Errorf("expected patch count 12, got %d", q.PatchCount)
	}
	if q.Patches[0].ImageURL != "patch-0.jpg" {
		t.Errorf("expected first patches kept in order, got %q", q.Patches[0].ImageURL)
	}
}

func TestQuiltsSearch_OwnerDenormalized(t *testing.T) {
	ms := newMockStore()
	ms.add(t, "quilt", "q1", quiltDoc{
		ID: "q1", Name: "stars", IsPublic: true,
		Owner: userRefDoc{ID: "u1", Username: "maker", Name: "The Maker"},
	})

	repo := NewQuilts(ms, testPrefix)
	quilts, err := repo.Search(context.Background(), "viewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quilts[0].Owner.Username != "maker" {
		t.Errorf("unexpected owner ref: %+v", quilts[0].Owner)
	}
}
