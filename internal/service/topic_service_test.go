package service

import (
	"context"
	"testing"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicCreate(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	desc := "the Go programming language"
	topic, err := svcs.Topic.Create(ctx, &models.TopicInput{Title: "Go", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Go", topic.Title)

	// A different casing of an existing title is a conflict.
	_, err = svcs.Topic.Create(ctx, &models.TopicInput{Title: "go"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svcs.Topic.Create(ctx, &models.TopicInput{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTopicGetByTitle(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svcs.Topic.Create(ctx, &models.TopicInput{Title: "Databases"})
	require.NoError(t, err)

	topic, err := svcs.Topic.GetByTitle(ctx, "databases")
	require.NoError(t, err)
	assert.Equal(t, created.ID, topic.ID)
	assert.Equal(t, "Databases", topic.Title)

	_, err = svcs.Topic.GetByTitle(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopicList(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	for _, title := range []string{"go", "rust", "zig"} {
		_, err := svcs.Topic.Create(ctx, &models.TopicInput{Title: title})
		require.NoError(t, err)
	}

	topics, err := svcs.Topic.List(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 3)
}
