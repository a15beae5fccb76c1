// Package service implements the application's business logic.
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ngonapp/ngon/internal/model"
)

// Discriminant tags attached to search results so consumers can tell which
// collection an item came from.
const (
	TagPost   = "post"
	TagRecipe = "recipe"
)

// PostSearcher searches the posts collection.
type PostSearcher interface {
	Search(ctx context.Context, q string) ([]model.Post, error)
}

// RecipeSearcher searches the recipes collection.
type RecipeSearcher interface {
	Search(ctx context.Context, q string) ([]model.Recipe, error)
}

// TaggedPost is a post annotated with its origin tag. Embedding keeps the
// entity fields flat in the serialized item.
type TaggedPost struct {
	model.Post
	Type string `json:"type"`
}

// TaggedRecipe is a recipe annotated with its origin tag.
type TaggedRecipe struct {
	model.Recipe
	Type string `json:"type"`
}

// SearchResult is the merged outcome of a search across both collections.
type SearchResult struct {
	Total int
	Items []any
}

// SearchService performs free-text search across posts and recipes.
type SearchService struct {
	posts   PostSearcher
	recipes RecipeSearcher
}

// NewSearchService creates a new SearchService.
func NewSearchService(posts PostSearcher, recipes RecipeSearcher) *SearchService {
	return &SearchService{
		posts:   posts,
		recipes: recipes,
	}
}

// Search returns every post and recipe containing the query as a
// case-insensitive substring. A blank query yields an empty result without
// touching the store. Both collection queries run concurrently; if either
// fails the whole search fails, never partial results. The merge order is
// deterministic: all posts first, then all recipes, each preserving the
// order produced by its query.
func (s *SearchService) Search(ctx context.Context, q string) (*SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &SearchResult{Total: 0, Items: []any{}}, nil
	}

	var (
		posts   []model.Post
		recipes []model.Recipe
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.posts.Search(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = s.recipes.Search(gctx, q)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(posts)+len(recipes))
	for _, p := range posts {
		items = append(items, TaggedPost{Post: p, Type: TagPost})
	}
	for _, r := range recipes {
		items = append(items, TaggedRecipe{Recipe: r, Type: TagRecipe})
	}

	return &SearchResult{
		Total: len(items),
		Items: items,
	}, nil
}
