// Package catalog holds the read-only entity projections the search engine
// scores and ranks. The engine never mutates or persists them; they are
// constructed per request from store reads and discarded at response time.
package catalog

import "time"

// UserRef is the denormalized author/owner reference attached to posts and
// quilts.
type UserRef struct {
	ID             string
	Username       string
	Name           string
	ProfilePicture string
}

// User is a searchable user profile. Users carry no visibility gate.
type User struct {
	ID             string
	Username       string
	Name           string
	Bio            string
	ProfilePicture string
	CreatedAt      time.Time
}

// PostType distinguishes social from marketplace posts.
type PostType string

// Post type constants.
const (
	PostRegular PostType = "regular"
	PostMarket  PostType = "market"
)

// Post is a searchable social or marketplace post.
type Post struct {
	ID         string
	Type       PostType
	Caption    string
	ImageURL   string
	PriceCents int64
	IsSold     bool
	CreatedAt  time.Time
	IsPublic   bool
	OwnerID    string
	Author     UserRef
}

// VisibleTo reports whether the post passes the public-or-owned gate.
func (p Post) VisibleTo(viewerID string) bool {
	return p.IsPublic || p.OwnerID == viewerID
}

// Patch is a single patch image belonging to a quilt.
type Patch struct {
	ImageURL string
}

// Quilt is a searchable quilt with its preview patches. Patches holds at most
// the first MaxPreviewPatches entries; PatchCount is the full count.
type Quilt struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	IsPublic    bool
	OwnerID     string
	Owner       UserRef
	Patches     []Patch
	PatchCount  int
}

// MaxPreviewPatches bounds how many patch images a quilt candidate carries.
const MaxPreviewPatches = 9

// VisibleTo reports whether the quilt passes the public-or-owned gate.
func (q Quilt) VisibleTo(viewerID string) bool {
	return q.IsPublic || q.OwnerID == viewerID
}
