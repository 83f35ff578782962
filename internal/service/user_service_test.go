package service

import (
	"context"
	"testing"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByUsername(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	seedUser(t, store, "alice")

	user, err := svcs.User.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svcs.User.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")

	bio := "writes about Go"
	site := "https://alice.example.com"
	user, err := svcs.User.UpdateProfile(ctx, alice.ID, &models.ProfileUpdate{
		Bio:        &bio,
		WebsiteURL: &site,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Bio)
	assert.Equal(t, bio, *user.Bio)

	// Untouched fields stay put across a second partial update.
	first := "Alice"
	user, err = svcs.User.UpdateProfile(ctx, alice.ID, &models.ProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	require.NotNil(t, user.Bio)
	assert.Equal(t, bio, *user.Bio)

	bad := "not a url"
	_, err = svcs.User.UpdateProfile(ctx, alice.ID, &models.ProfileUpdate{WebsiteURL: &bad})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddInterestsKeepsExisting(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")

	topics, err := svcs.User.AddInterests(ctx, alice.ID, []string{"go"})
	require.NoError(t, err)
	require.Len(t, topics, 1)

	// Adding again with one repeat accumulates, it does not replace.
	topics, err = svcs.User.AddInterests(ctx, alice.ID, []string{"GO", "rust"})
	require.NoError(t, err)
	assert.Len(t, topics, 2)
	assert.Len(t, store.Topics, 2)

	_, err = svcs.User.AddInterests(ctx, "no-such-user", []string{"go"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboard(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")

	seedArticle(t, svcs, alice.ID, "Mine", []string{"go"}, true)
	theirs := seedArticle(t, svcs, bob.ID, "Theirs", []string{"rust"}, true)

	_, err := svcs.User.AddInterests(ctx, alice.ID, []string{"rust"})
	require.NoError(t, err)

	dash, err := svcs.User.Dashboard(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, dash.User.ID)
	require.Len(t, dash.Articles, 1)
	assert.Equal(t, 1, dash.ArticlesCount)
	require.Len(t, dash.Feeds, 1)
	assert.Equal(t, theirs.ID, dash.Feeds[0].ID)
	require.Len(t, dash.Topics, 1)
	assert.Equal(t, "rust", dash.Topics[0].Title)

	_, err = svcs.User.Dashboard(ctx, "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsernameTaken(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	seedUser(t, store, "alice")

	taken, err := svcs.User.UsernameTaken(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svcs.User.UsernameTaken(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserDelete(t *testing.T) {
	svcs, store := newTestServices(t)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")

	require.NoError(t, svcs.User.Delete(ctx, alice.ID))
	assert.Empty(t, store.Users)

	err := svcs.User.Delete(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
