package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngonapp/ngon/internal/model"
)

type stubPostSearcher struct {
	posts []model.Post
	err   error
	calls int
	gotQ  string
}

func (s *stubPostSearcher) Search(_ context.Context, q string) ([]model.Post, error) {
	s.calls++
	s.gotQ = q
	return s.posts, s.err
}

type stubRecipeSearcher struct {
	recipes []model.Recipe
	err     error
	calls   int
}

func (s *stubRecipeSearcher) Search(_ context.Context, q string) ([]model.Recipe, error) {
	s.calls++
	return s.recipes, s.err
}

func TestSearch_BlankQuerySkipsStore(t *testing.T) {
	t.Parallel()

	posts := &stubPostSearcher{}
	recipes := &stubRecipeSearcher{}
	svc := NewSearchService(posts, recipes)

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Items)
	}

	assert.Zero(t, posts.calls, "blank query must not reach the store")
	assert.Zero(t, recipes.calls, "blank query must not reach the store")
}

func TestSearch_TrimsQuery(t *testing.T) {
	t.Parallel()

	posts := &stubPostSearcher{}
	recipes := &stubRecipeSearcher{}
	svc := NewSearchService(posts, recipes)

	_, err := svc.Search(context.Background(), "  pho  ")
	require.NoError(t, err)
	assert.Equal(t, "pho", posts.gotQ)
}

func TestSearch_MergeOrderAndTags(t *testing.T) {
	t.Parallel()

	posts := &stubPostSearcher{posts: []model.Post{
		{ID: primitive.NewObjectID(), FoodName: "pho xao"},
		{ID: primitive.NewObjectID(), FoodName: "pho bo"},
	}}
	recipes := &stubRecipeSearcher{recipes: []model.Recipe{
		{ID: primitive.NewObjectID(), Name: "Pho ga", Ingredients: []string{"pho", "ga"}},
	}}
	svc := NewSearchService(posts, recipes)

	result, err := svc.Search(context.Background(), "pho")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Items, 3)

	// Posts first, preserving query order, then recipes.
	first, ok := result.Items[0].(TaggedPost)
	require.True(t, ok)
	assert.Equal(t, TagPost, first.Type)
	assert.Equal(t, "pho xao", first.FoodName)

	second, ok := result.Items[1].(TaggedPost)
	require.True(t, ok)
	assert.Equal(t, "pho bo", second.FoodName)

	third, ok := result.Items[2].(TaggedRecipe)
	require.True(t, ok)
	assert.Equal(t, TagRecipe, third.Type)
	assert.Equal(t, "Pho ga", third.Name)
}

func TestSearch_FailsWhollyOnEitherQuery(t *testing.T) {
	t.Parallel()

	boom := errors.New("cursor error")

	cases := []struct {
		name    string
		posts   *stubPostSearcher
		recipes *stubRecipeSearcher
	}{
		{
			name:    "posts query fails",
			posts:   &stubPostSearcher{err: boom},
			recipes: &stubRecipeSearcher{recipes: []model.Recipe{{Name: "Pho ga"}}},
		},
		{
			name:    "recipes query fails",
			posts:   &stubPostSearcher{posts: []model.Post{{FoodName: "pho"}}},
			recipes: &stubRecipeSearcher{err: boom},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewSearchService(tc.posts, tc.recipes)
			result, err := svc.Search(context.Background(), "pho")

			require.ErrorIs(t, err, boom)
			assert.Nil(t, result, "no partial results on failure")
		})
	}
}
