// seedctl loads catalog fixtures into the store so searchd has data to
// rank against in local and staging environments.
//
// Usage:
//
//	seedctl -file fixtures.json [-addr localhost:6379] [-prefix quiltly:]
//
// The fixture file holds three arrays: users, posts, quilts. Field names
// match the wire format searchd reads back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	dbRedis "github.com/quiltly/searchd/internal/db/redis"
	"github.com/quiltly/searchd/internal/domain/catalog"
	catalogrepo "github.com/quiltly/searchd/internal/repository/catalog"
)

type userFixture struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

type refFixture struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

type postFixture struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Caption    string     `json:"caption"`
	ImageURL   string     `json:"imageUrl"`
	PriceCents int64      `json:"priceCents"`
	IsSold     bool       `json:"isSold"`
	IsPublic   bool       `json:"isPublic"`
	OwnerID    string     `json:"ownerId"`
	Author     refFixture `json:"author"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type quiltFixture struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsPublic    bool       `json:"isPublic"`
	OwnerID     string     `json:"ownerId"`
	Owner       refFixture `json:"owner"`
	PatchImages []string   `json:"patchImages"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type fixtureFile struct {
	Users  []userFixture  `json:"users"`
	Posts  []postFixture  `json:"posts"`
	Quilts []quiltFixture `json:"quilts"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seedctl:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		file     = flag.String("file", "", "fixture JSON file (required)")
		addr     = flag.String("addr", "localhost:6379", "store address")
		password = flag.String("password", "", "store password")
		prefix   = flag.String("prefix", "quiltly:", "key prefix")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall timeout")
	)
	flag.Parse()

	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}
	var fx fixtureFile
	if err := json.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    []string{*addr},
		Password: *password,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := store.WaitForReady(ctx, *timeout); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}

	seeder := catalogrepo.NewSeeder(store, *prefix)

	if err := seeder.PutUsers(ctx, usersFromFixtures(fx.Users)); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seeder.PutPosts(ctx, postsFromFixtures(fx.Posts)); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	if err := seeder.PutQuilts(ctx, quiltsFromFixtures(fx.Quilts)); err != nil {
		return fmt.Errorf("seed quilts: %w", err)
	}

	fmt.Printf("seeded %d users, %d posts, %d quilts\n", len(fx.Users), len(fx.Posts), len(fx.Quilts))
	return nil
}

func refFromFixture(f refFixture) catalog.UserRef {
	return catalog.UserRef{
		ID:             f.ID,
		Username:       f.Username,
		Name:           f.Name,
		ProfilePicture: f.ProfilePicture,
	}
}

func usersFromFixtures(fs []userFixture) []catalog.User {
	out := make([]catalog.User, len(fs))
	for i, f := range fs {
		out[i] = catalog.User{
			ID:             f.ID,
			Username:       f.Username,
			Name:           f.Name,
			Bio:            f.Bio,
			ProfilePicture: f.ProfilePicture,
			CreatedAt:      f.CreatedAt,
		}
	}
	return out
}

func postsFromFixtures(fs []postFixture) []catalog.Post {
	out := make([]catalog.Post, len(fs))
	for i, f := range fs {
		out[i] = catalog.Post{
			ID:         f.ID,
			Type:       catalog.PostType(f.Type),
			Caption:    f.Caption,
			ImageURL:   f.ImageURL,
			PriceCents: f.PriceCents,
			IsSold:     f.IsSold,
			IsPublic:   f.IsPublic,
			OwnerID:    f.OwnerID,
			Author:     refFromFixture(f.Author),
			CreatedAt:  f.CreatedAt,
		}
	}
	return out
}

func quiltsFromFixtures(fs []quiltFixture) []catalog.Quilt {
	out := make([]catalog.Quilt, len(fs))
	for i, f := range fs {
		patches := make([]catalog.Patch, len(f.PatchImages))
		for j, url := range f.PatchImages {
			patches[j] = catalog.Patch{ImageURL: url}
		}
		out[i] = catalog.Quilt{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			IsPublic:    f.IsPublic,
			OwnerID:     f.OwnerID,
			Owner:       refFromFixture(f.Owner),
			Patches:     patches,
			PatchCount:  len(patches),
			CreatedAt:   f.CreatedAt,
		}
	}
	return out
}
