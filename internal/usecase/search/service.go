// Package search orchestrates the engine pipeline: fetch candidates, score,
// rank, paginate. It holds no state across requests.
package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/quiltly/searchd/internal/domain/catalog"
	"github.com/quiltly/searchd/internal/domain/search/page"
	"github.com/quiltly/searchd/internal/domain/search/query"
	"github.com/quiltly/searchd/internal/domain/search/rank"
	"github.com/quiltly/searchd/internal/domain/search/score"
	"github.com/quiltly/searchd/internal/metrics"
)

// Service runs weighted search across the four entity types.
type Service struct {
	users  UserSource
	posts  PostSource
	quilts QuiltSource
}

// New creates a search service.
func New(users UserSource, posts PostSource, quilts QuiltSource) *Service {
	return &Service{users: users, posts: posts, quilts: quilts}
}

// Page is one tab-mode page of ranked results.
type Page[T any] struct {
	Items      []T
	Pagination page.Pagination
}

// Section is one overview-mode preview of ranked results.
type Section[T any] struct {
	Items   []T
	Total   int
	HasMore bool
}

// Overview aggregates the four section previews of overall mode.
type Overview struct {
	Users       Section[catalog.User]
	Social      Section[catalog.Post]
	Marketplace Section[catalog.Post]
	Quilts      Section[catalog.Quilt]
}

// Users runs a users-tab search. A too-short query returns an empty page with
// an all-zero pagination block without touching the store.
func (s *Service) Users(ctx context.Context, q *query.Query, viewerID string) (Page[catalog.User], error) {
	if q.TooShort() {
		return Page[catalog.User]{}, nil
	}
	ranked, err := s.rankedUsers(ctx, q)
	if err != nil {
		return Page[catalog.User]{}, err
	}
	return pageOf(ranked, q), nil
}

// Social runs a social-tab search over regular posts.
func (s *Service) Social(ctx context.Context, q *query.Query, viewerID string) (Page[catalog.Post], error) {
	return s.postsTab(ctx, q, catalog.PostRegular, viewerID)
}

// Marketplace runs a marketplace-tab search over market posts.
func (s *Service) Marketplace(ctx context.Context, q *query.Query, viewerID string) (Page[catalog.Post], error) {
	return s.postsTab(ctx, q, catalog.PostMarket, viewerID)
}

// Quilts runs a quilts-tab search.
func (s *Service) Quilts(ctx context.Context, q *query.Query, viewerID string) (Page[catalog.Quilt], error) {
	if q.TooShort() {
		return Page[catalog.Quilt]{}, nil
	}
	ranked, err := s.rankedQuilts(ctx, q, viewerID)
	if err != nil {
		return Page[catalog.Quilt]{}, err
	}
	return pageOf(ranked, q), nil
}

// Overview runs all four section previews concurrently. A too-short query
// returns four empty sections without touching the store. One failing
// section fails the whole request; sibling fetches are cancelled.
func (s *Service) Overview(ctx context.Context, q *query.Query, viewerID string) (Overview, error) {
	var ov Overview
	if q.TooShort() {
		return ov, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ranked, err := s.rankedUsers(gctx, q)
		if err != nil {
			return err
		}
		ov.Users = sectionOf(ranked, q.SectionLimit())
		return nil
	})
	g.Go(func() error {
		ranked, err := s.rankedPosts(gctx, q, catalog.PostRegular, viewerID)
		if err != nil {
			return err
		}
		ov.Social = sectionOf(ranked, q.SectionLimit())
		return nil
	})
	g.Go(func() error {
		ranked, err := s.rankedPosts(gctx, q, catalog.PostMarket, viewerID)
		if err != nil {
			return err
		}
		ov.Marketplace = sectionOf(ranked, q.SectionLimit())
		return nil
	})
	g.Go(func() error {
		ranked, err := s.rankedQuilts(gctx, q, viewerID)
		if err != nil {
			return err
		}
		ov.Quilts = sectionOf(ranked, q.SectionLimit())
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}

func (s *Service) postsTab(
	ctx context.Context, q *query.Query, typ catalog.PostType, viewerID string,
) (Page[catalog.Post], error) {
	if q.TooShort() {
		return Page[catalog.Post]{}, nil
	}
	ranked, err := s.rankedPosts(ctx, q, typ, viewerID)
	if err != nil {
		return Page[catalog.Post]{}, err
	}
	return pageOf(ranked, q), nil
}

func (s *Service) rankedUsers(ctx context.Context, q *query.Query) ([]catalog.User, error) {
	candidates, err := s.users.Search(ctx, q.Normalized(), q.Tokens())
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	metrics.SearchCandidates.WithLabelValues("users").Observe(float64(len(candidates)))

	items := make([]rank.Item[catalog.User], 0, len(candidates))
	for _, u := range candidates {
		items = append(items, rank.Item[catalog.User]{
			Value:     u,
			ID:        u.ID,
			Score:     score.User(u, q.Normalized(), q.Tokens()),
			CreatedAt: u.CreatedAt,
		})
	}
	return rank.Values(rank.Sort(items)), nil
}

func (s *Service) rankedPosts(
	ctx context.Context, q *query.Query, typ catalog.PostType, viewerID string,
) ([]catalog.Post, error) {
	candidates, err := s.posts.Search(ctx, typ, viewerID)
	if err != nil {
		return nil, fmt.Errorf("fetch %s posts: %w", typ, err)
	}
	metrics.SearchCandidates.WithLabelValues(string(typ) + "_posts").Observe(float64(len(candidates)))

	items := make([]rank.Item[catalog.Post], 0, len(candidates))
	for _, p := range candidates {
		items = append(items, rank.Item[catalog.Post]{
			Value:     p,
			ID:        p.ID,
			Score:     score.Post(p, q.Normalized(), q.Tokens()),
			CreatedAt: p.CreatedAt,
		})
	}
	return rank.Values(rank.Sort(items)), nil
}

func (s *Service) rankedQuilts(ctx context.Context, q *query.Query, viewerID string) ([]catalog.Quilt, error) {
	candidates, err := s.quilts.Search(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("fetch quilts: %w", err)
	}
	metrics.SearchCandidates.WithLabelValues("quilts").Observe(float64(len(candidates)))

	items := make([]rank.Item[catalog.Quilt], 0, len(candidates))
	for _, qu := range candidates {
		items = append(items, rank.Item[catalog.Quilt]{
			Value:     qu,
			ID:        qu.ID,
			Score:     score.Quilt(qu, q.Normalized(), q.Tokens()),
			CreatedAt: qu.CreatedAt,
		})
	}
	return rank.Values(rank.Sort(items)), nil
}

func pageOf[T any](ranked []T, q *query.Query) Page[T] {
	items, p := page.Slice(ranked, q.Offset(), q.Limit())
	return Page[T]{Items: items, Pagination: p}
}

func sectionOf[T any](ranked []T, limit int) Section[T] {
	items, more := page.Head(ranked, limit)
	return Section[T]{Items: items, Total: len(ranked), HasMore: more}
}
