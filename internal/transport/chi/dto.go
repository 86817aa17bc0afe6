package chi

import (
	"time"

	"github.com/quiltly/searchd/internal/domain/catalog"
	"github.com/quiltly/searchd/internal/domain/search/page"
	searchuc "github.com/quiltly/searchd/internal/usecase/search"
)

// Response DTOs. Internal scores are never exposed; author/owner references
// are denormalized to the fields the UI renders.

type userRefDTO struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

type userDTO struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

type postDTO struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Caption    string     `json:"caption"`
	ImageURL   string     `json:"imageUrl"`
	PriceCents int64      `json:"priceCents"`
	IsSold     bool       `json:"isSold"`
	CreatedAt  time.Time  `json:"createdAt"`
	Author     userRefDTO `json:"author"`
}

type quiltDTO struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	CreatedAt     time.Time  `json:"createdAt"`
	Owner         userRefDTO `json:"owner"`
	PatchCount    int        `json:"patchCount"`
	PreviewImages []string   `json:"previewImages"`
}

type paginationDTO struct {
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	HasMore    bool `json:"hasMore"`
	NextOffset int  `json:"nextOffset"`
}

type sectionDTO[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

type tabPayload[T any] struct {
	Query      string        `json:"query"`
	Tab        string        `json:"tab"`
	Items      []T           `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type overviewSections struct {
	Users       sectionDTO[userDTO]  `json:"users"`
	Social      sectionDTO[postDTO]  `json:"social"`
	Marketplace sectionDTO[postDTO]  `json:"marketplace"`
	Quilts      sectionDTO[quiltDTO] `json:"quilts"`
}

type overviewPayload struct {
	Query    string           `json:"query"`
	Tab      string           `json:"tab"`
	Sections overviewSections `json:"sections"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func refToDTO(r catalog.UserRef) userRefDTO {
	return userRefDTO{
		ID:             r.ID,
		Username:       r.Username,
		Name:           r.Name,
		ProfilePicture: r.ProfilePicture,
	}
}

func userToDTO(u catalog.User) userDTO {
	return userDTO{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

func postToDTO(p catalog.Post) postDTO {
	return postDTO{
		ID:         p.ID,
		Type:       string(p.Type),
		Caption:    p.Caption,
		ImageURL:   p.ImageURL,
		PriceCents: p.PriceCents,
		IsSold:     p.IsSold,
		CreatedAt:  p.CreatedAt,
		Author:     refToDTO(p.Author),
	}
}

func quiltToDTO(q catalog.Quilt) quiltDTO {
	previews := make([]string, len(q.Patches))
	for i, p := range q.Patches {
		previews[i] = p.ImageURL
	}
	return quiltDTO{
		ID:            q.ID,
		Name:          q.Name,
		Description:   q.Description,
		CreatedAt:     q.CreatedAt,
		Owner:         refToDTO(q.Owner),
		PatchCount:    q.PatchCount,
		PreviewImages: previews,
	}
}

func paginationToDTO(p page.Pagination) paginationDTO {
	return paginationDTO{
		Offset:     p.Offset,
		Limit:      p.Limit,
		Total:      p.Total,
		HasMore:    p.HasMore,
		NextOffset: p.NextOffset,
	}
}

func mapItems[T, D any](items []T, f func(T) D) []D {
	out := make([]D, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

func sectionToDTO[T, D any](s searchuc.Section[T], f func(T) D) sectionDTO[D] {
	return sectionDTO[D]{
		Items:   mapItems(s.Items, f),
		Total:   s.Total,
		HasMore: s.HasMore,
	}
}

func tabPayloadFrom[T, D any](queryText, tabName string, pg searchuc.Page[T], f func(T) D) tabPayload[D] {
	return tabPayload[D]{
		Query:      queryText,
		Tab:        tabName,
		Items:      mapItems(pg.Items, f),
		Pagination: paginationToDTO(pg.Pagination),
	}
}
