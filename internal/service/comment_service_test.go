package service

import (
	"context"
	"testing"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentAdd(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	reader := seedUser(t, store, "reader")
	article := seedArticle(t, svcs, author.ID, "Intro", nil, true)

	comment, err := svcs.Comment.Add(ctx, article.ID, reader.ID, "great read", nil)
	require.NoError(t, err)
	assert.Equal(t, article.ID, comment.ArticleID)
	assert.Nil(t, comment.ParentID)

	// The author hears about it.
	notifs, err := svcs.Notification.ListForUser(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationComment, notifs[0].Type)

	// Commenting on your own article does not.
	_, err = svcs.Comment.Add(ctx, article.ID, author.ID, "thanks", nil)
	require.NoError(t, err)
	notifs, err = svcs.Notification.ListForUser(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, notifs, 1)
}

func TestCommentAddValidation(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	article := seedArticle(t, svcs, author.ID, "Intro", nil, true)

	_, err := svcs.Comment.Add(ctx, article.ID, author.ID, "   ", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svcs.Comment.Add(ctx, "no-such-article", author.ID, "hi", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentReplyParentChecks(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	reader := seedUser(t, store, "reader")
	first := seedArticle(t, svcs, author.ID, "First", nil, true)
	second := seedArticle(t, svcs, author.ID, "Second", nil, true)

	parent, err := svcs.Comment.Add(ctx, first.ID, reader.ID, "root", nil)
	require.NoError(t, err)

	reply, err := svcs.Comment.Add(ctx, first.ID, author.ID, "reply", &parent.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)

	// A parent on a different article is rejected the same way as a
	// missing one.
	_, err = svcs.Comment.Add(ctx, second.ID, author.ID, "cross", &parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	missing := "no-such-comment"
	_, err = svcs.Comment.Add(ctx, first.ID, author.ID, "orphan", &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentListTree(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	author := seedUser(t, store, "author")
	reader := seedUser(t, store, "reader")
	article := seedArticle(t, svcs, author.ID, "Intro", nil, true)

	rootA, err := svcs.Comment.Add(ctx, article.ID, reader.ID, "first", nil)
	require.NoError(t, err)
	rootB, err := svcs.Comment.Add(ctx, article.ID, author.ID, "second", nil)
	require.NoError(t, err)
	reply, err := svcs.Comment.Add(ctx, article.ID, author.ID, "reply", &rootA.ID)
	require.NoError(t, err)
	nested, err := svcs.Comment.Add(ctx, article.ID, reader.ID, "nested", &reply.ID)
	require.NoError(t, err)

	tree, err := svcs.Comment.ListTree(ctx, article.ID)
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, rootA.ID, tree[0].ID)
	assert.Equal(t, rootB.ID, tree[1].ID)

	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, reply.ID, tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, nested.ID, tree[0].Replies[0].Replies[0].ID)
	assert.Empty(t, tree[1].Replies)

	_, err = svcs.Comment.ListTree(ctx, "no-such-article")
	assert.ErrorIs(t, err, ErrNotFound)
}
