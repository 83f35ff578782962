package service

import (
	"context"
	"testing"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreateResolvesTopics(t *testing.T) {
	svcs, store := newTestServices(t)

	author := seedUser(t, store, "author")
	article := seedArticle(t, svcs, author.ID, "Intro", []string{"Go", "go", "GO "}, true)

	// All three spellings collapse onto one topic with the first casing.
	require.Len(t, article.Topics, 1)
	assert.Equal(t, "Go", article.Topics[0].Title)
	assert.Len(t, store.Topics, 1)
}

func TestArticleCreateReusesExistingTopic(t *testing.T) {
	svcs, store := newTestServices(t)

	author := seedUser(t, store, "author")
	first := seedArticle(t, svcs, author.ID, "First", []string{"Databases"}, true)
	second := seedArticle(t, svcs, author.ID, "Second", []string{"databases"}, true)

	require.Len(t, first.Topics, 1)
	require.Len(t, second.Topics, 1)
	assert.Equal(t, first.Topics[0].ID, second.Topics[0].ID)
	assert.Equal(t, "Databases", second.Topics[0].Title)
	assert.Len(t, store.Topics, 1)
}

func TestArticleCreateValidation(t *testing.T) {
	svcs, store := newTestServices(t)
	author := seedUser(t, store, "author")

	_, err := svcs.Article.Create(context.Background(), author.ID, &models.ArticleInput{
		Title:   "  ",
		Content: "body",
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArticleUpdateReplacesTopics(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	article := seedArticle(t, svcs, author.ID, "Intro", []string{"go", "testing"}, true)
	require.Len(t, article.Topics, 2)

	updated, err := svcs.Article.Update(ctx, author.ID, article.ID, &models.ArticleInput{
		Title:       "Intro, revised",
		Content:     "new body",
		IsPublished: true,
		Topics:      []string{"testing"},
	})
	require.NoError(t, err)

	// Replacement, not merge: "go" is detached, the topic row survives.
	require.Len(t, updated.Topics, 1)
	assert.Equal(t, "testing", updated.Topics[0].Title)
	assert.Equal(t, "Intro, revised", updated.Title)
	assert.Len(t, store.Topics, 2)
}

func TestArticleUpdateByNonAuthor(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	other := seedUser(t, store, "other")
	article := seedArticle(t, svcs, author.ID, "Mine", nil, true)

	in := &models.ArticleInput{Title: "Stolen", Content: "body", IsPublished: true}

	// Someone else's article and a missing one look the same.
	_, err := svcs.Article.Update(ctx, other.ID, article.ID, in)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svcs.Article.Update(ctx, author.ID, "no-such-article", in)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svcs.Article.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestArticleGetCountsViews(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	article := seedArticle(t, svcs, author.ID, "Intro", nil, true)

	got, err := svcs.Article.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)

	got, err = svcs.Article.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewsCount)

	_, err = svcs.Article.Get(ctx, "no-such-article")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleDelete(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	other := seedUser(t, store, "other")
	article := seedArticle(t, svcs, author.ID, "Doomed", []string{"go"}, true)

	_, err := svcs.Comment.Add(ctx, article.ID, other.ID, "first", nil)
	require.NoError(t, err)

	err = svcs.Article.Delete(ctx, other.ID, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svcs.Article.Delete(ctx, author.ID, article.ID))
	assert.Empty(t, store.Articles)
	assert.Empty(t, store.Comments)
	// The topic outlives the article.
	assert.Len(t, store.Topics, 1)
}

func TestSearch(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "gopher_fan")
	seedArticle(t, svcs, author.ID, "Concurrency in Go", []string{"golang"}, true)
	seedArticle(t, svcs, author.ID, "Draft about Go", nil, false)

	result, err := svcs.Article.Search(ctx, "go")
	require.NoError(t, err)

	// Unpublished articles never match.
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Concurrency in Go", result.Articles[0].Title)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "gopher_fan", result.Users[0].Username)
	require.Len(t, result.Topics, 1)
	assert.Equal(t, "golang", result.Topics[0].Title)

	_, err = svcs.Article.Search(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
