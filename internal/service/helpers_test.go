package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/config"
	"github.com/ibimina/chatter-api/internal/mocks"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*Services, *mocks.Store) {
	t.Helper()
	store := mocks.NewStore()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
	}
	return NewServices(store.Repos(), cfg, zerolog.Nop()), store
}

func seedUser(t *testing.T, store *mocks.Store, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    username + "@example.com",
		Username: username,
		IsActive: true,
	}
	require.NoError(t, store.Repos().User.Create(context.Background(), user))
	return user
}

func seedArticle(t *testing.T, svcs *Services, authorID, title string, topics []string, published bool) *models.Article {
	t.Helper()
	article, err := svcs.Article.Create(context.Background(), authorID, &models.ArticleInput{
		Title:       title,
		Content:     "some content for " + title,
		IsPublished: published,
		Topics:      topics,
	})
	require.NoError(t, err)
	return article
}
