package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Counter reports the document count of one collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Stats is a snapshot of collection counts, regenerated on every call.
type Stats struct {
	Users     int64 `json:"users"`
	Recipes   int64 `json:"recipes"`
	UserPosts int64 `json:"userPosts"`
}

// StatsService aggregates counts across the three collections.
type StatsService struct {
	accounts Counter
	recipes  Counter
	posts    Counter
}

// NewStatsService creates a new StatsService.
func NewStatsService(accounts, recipes, posts Counter) *StatsService {
	return &StatsService{
		accounts: accounts,
		recipes:  recipes,
		posts:    posts,
	}
}

// Collect runs the three count operations concurrently and waits for all of
// them. If any count fails the whole snapshot fails; partial statistics are
// never returned.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Users, err = s.accounts.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Recipes, err = s.recipes.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.UserPosts, err = s.posts.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
