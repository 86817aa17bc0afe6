package catalog

import (
	"time"

	"github.com/quiltly/searchd/internal/domain/catalog"
)

// Storage documents. The main application writes these JSON shapes; searchd
// only reads them (the seeder exists for dev fixtures).

type userRefDoc struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

type userDoc struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

type postDoc struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Caption    string     `json:"caption"`
	ImageURL   string     `json:"imageUrl"`
	PriceCents int64      `json:"priceCents"`
	IsSold     bool       `json:"isSold"`
	CreatedAt  time.Time  `json:"createdAt"`
	IsPublic   bool       `json:"isPublic"`
	OwnerID    string     `json:"ownerId"`
	Author     userRefDoc `json:"author"`
}

type patchDoc struct {
	ImageURL string `json:"imageUrl"`
}

type quiltDoc struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	IsPublic    bool       `json:"isPublic"`
	OwnerID     string     `json:"ownerId"`
	Owner       userRefDoc `json:"owner"`
	Patches     []patchDoc `json:"patches"`
}

func (d userRefDoc) toDomain() catalog.UserRef {
	return catalog.UserRef{
		ID:             d.ID,
		Username:       d.Username,
		Name:           d.Name,
		ProfilePicture: d.ProfilePicture,
	}
}

func (d userDoc) toDomain() catalog.User {
	return catalog.User{
		ID:             d.ID,
		Username:       d.Username,
		Name:           d.Name,
		Bio:            d.Bio,
		ProfilePicture: d.ProfilePicture,
		CreatedAt:      d.CreatedAt,
	}
}

func (d postDoc) toDomain() catalog.Post {
	return catalog.Post{
		ID:         d.ID,
		Type:       catalog.PostType(d.Type),
		Caption:    d.Caption,
		ImageURL:   d.ImageURL,
		PriceCents: d.PriceCents,
		IsSold:     d.IsSold,
		CreatedAt:  d.CreatedAt,
		IsPublic:   d.IsPublic,
		OwnerID:    d.OwnerID,
		Author:     d.Author.toDomain(),
	}
}

// toDomain projects the stored quilt: the candidate carries at most the first
// MaxPreviewPatches patch images plus the full patch count.
func (d quiltDoc) toDomain() catalog.Quilt {
	preview := d.Patches
	if len(preview) > catalog.MaxPreviewPatches {
		preview = preview[:catalog.MaxPreviewPatches]
	}
	patches := make([]catalog.Patch, len(preview))
	for i, p := range preview {
		patches[i] = catalog.Patch{ImageURL: p.ImageURL}
	}

	return catalog.Quilt{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		IsPublic:    d.IsPublic,
		OwnerID:     d.OwnerID,
		Owner:       d.Owner.toDomain(),
		Patches:     patches,
		PatchCount:  len(d.Patches),
	}
}

func refDocFromDomain(r catalog.UserRef) userRefDoc {
	return userRefDoc{
		ID:             r.ID,
		Username:       r.Username,
		Name:           r.Name,
		ProfilePicture: r.ProfilePicture,
	}
}

func userDocFromDomain(u catalog.User) userDoc {
	return userDoc{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

func postDocFromDomain(p catalog.Post) postDoc {
	return postDoc{
		ID:         p.ID,
		Type:       string(p.Type),
		Caption:    p.Caption,
		ImageURL:   p.ImageURL,
		PriceCents: p.PriceCents,
		IsSold:     p.IsSold,
		CreatedAt:  p.CreatedAt,
		IsPublic:   p.IsPublic,
		OwnerID:    p.OwnerID,
		Author:     refDocFromDomain(p.Author),
	}
}

func quiltDocFromDomain(q catalog.Quilt) quiltDoc {
	patches := make([]patchDoc, len(q.Patches))
	for i, p := range q.Patches {
		patches[i] = patchDoc{ImageURL: p.ImageURL}
	}
	return quiltDoc{
		ID:          q.ID,
		Name:        q.Name,
		Description: q.Description,
		CreatedAt:   q.CreatedAt,
		IsPublic:    q.IsPublic,
		OwnerID:     q.OwnerID,
		Owner:       refDocFromDomain(q.Owner),
		Patches:     patches,
	}
}
