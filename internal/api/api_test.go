package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/config"
	"github.com/ibimina/chatter-api/internal/mocks"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
	}
	store := mocks.NewStore()
	services := service.NewServices(store.Repos(), cfg, zerolog.Nop())
	return NewRouter(services, cfg, zerolog.Nop())
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func register(t *testing.T, router *gin.Engine, email string) *models.AuthUser {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/users", "", gin.H{
		"email":    email,
		"password": "s3cret-enough",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	authed := decode[*models.AuthUser](t, w)
	require.NotEmpty(t, authed.AccessToken)
	return authed
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", body["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	authed := register(t, router, "alice@example.com")
	assert.Equal(t, "bearer", authed.TokenType)

	// Email is taken now.
	w := doJSON(t, router, http.MethodPost, "/users", "", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-enough",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret-enough",
	})
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decode[*models.AuthUser](t, w)
	assert.Equal(t, authed.ID, loggedIn.ID)

	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/articles", "", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/articles", "garbage-token", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckUsername(t *testing.T) {
	router := newTestRouter(t)
	authed := register(t, router, "alice@example.com")

	w := doJSON(t, router, http.MethodGet, "/users/check_username/"+authed.Username, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/users/check_username/unclaimed_name_42", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, true, body["available"])
}

// The full engagement round trip: publish with duplicate topic
// spellings, like from another account, toggle back off.
func TestEngagementRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	writer := register(t, router, "writer@example.com")
	reader := register(t, router, "reader@example.com")

	w := doJSON(t, router, http.MethodPost, "/articles", writer.AccessToken, gin.H{
		"title":        "Intro",
		"content":      "a long enough body",
		"is_published": true,
		"topics":       []string{"rust", "Rust"},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	article := decode[*models.Article](t, w)
	require.Len(t, article.Topics, 1)
	assert.Equal(t, "rust", article.Topics[0].Title)

	w = doJSON(t, router, http.MethodGet, "/topics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	topics := decode[[]*models.Topic](t, w)
	require.Len(t, topics, 1)

	likePath := fmt.Sprintf("/articles/%s/like", article.ID)
	w = doJSON(t, router, http.MethodPost, likePath, reader.AccessToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	toggle := decode[map[string]any](t, w)
	assert.Equal(t, true, toggle["liked"])

	w = doJSON(t, router, http.MethodGet, "/articles/"+article.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[*models.Article](t, w)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 1, got.ViewsCount)

	// Second toggle removes the like.
	w = doJSON(t, router, http.MethodPost, likePath, reader.AccessToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	toggle = decode[map[string]any](t, w)
	assert.Equal(t, false, toggle["liked"])

	w = doJSON(t, router, http.MethodGet, "/articles/"+article.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[*models.Article](t, w)
	assert.Equal(t, 0, got.LikeCount)

	// The author was notified about the like.
	w = doJSON(t, router, http.MethodGet, "/notifications", writer.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notifs := decode[[]*models.Notification](t, w)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationLike, notifs[0].Type)
}

func TestCommentThread(t *testing.T) {
	router := newTestRouter(t)

	writer := register(t, router, "writer@example.com")
	reader := register(t, router, "reader@example.com")

	w := doJSON(t, router, http.MethodPost, "/articles", writer.AccessToken, gin.H{
		"title": "Intro", "content": "body", "is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	article := decode[*models.Article](t, w)

	w = doJSON(t, router, http.MethodPost, "/articles/"+article.ID+"/comment", reader.AccessToken,
		gin.H{"content": "first"})
	require.Equal(t, http.StatusCreated, w.Code)
	root := decode[*models.Comment](t, w)

	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/articles/%s/comment/%s/reply", article.ID, root.ID),
		writer.AccessToken, gin.H{"content": "thanks"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/articles/"+article.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tree := decode[[]*models.Comment](t, w)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "thanks", tree[0].Replies[0].Content)

	// A reply whose parent lives on another article is rejected.
	w = doJSON(t, router, http.MethodPost, "/articles", writer.AccessToken, gin.H{
		"title": "Other", "content": "body", "is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	other := decode[*models.Article](t, w)

	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/articles/%s/comment/%s/reply", other.ID, root.ID),
		reader.AccessToken, gin.H{"content": "cross"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowEndpoints(t *testing.T) {
	router := newTestRouter(t)

	alice := register(t, router, "alice@example.com")
	bob := register(t, router, "bob@example.com")

	w := doJSON(t, router, http.MethodPost, "/follow/users/"+bob.ID, alice.AccessToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/follow/users/"+alice.ID, alice.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/follow/users/"+bob.ID+"/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers := decode[[]*models.User](t, w)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	w = doJSON(t, router, http.MethodGet, "/follow/users/"+bob.ID+"/status", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[*models.FollowStatus](t, w)
	assert.True(t, status.IsFollowing)
	assert.Equal(t, 1, status.FollowerCount)

	w = doJSON(t, router, http.MethodDelete, "/follow/users/"+bob.ID, alice.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Already unfollowed.
	w = doJSON(t, router, http.MethodDelete, "/follow/users/"+bob.ID, alice.AccessToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedEndpoint(t *testing.T) {
	router := newTestRouter(t)

	writer := register(t, router, "writer@example.com")
	reader := register(t, router, "reader@example.com")

	w := doJSON(t, router, http.MethodPost, "/articles", writer.AccessToken, gin.H{
		"title": "Go in anger", "content": "body", "is_published": true,
		"topics": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/articles", writer.AccessToken, gin.H{
		"title": "Unfinished", "content": "body", "is_published": false,
		"topics": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Interest declared under a different casing still matches.
	w = doJSON(t, router, http.MethodPut, "/users/add_topics", reader.AccessToken,
		gin.H{"topics": []string{"GO"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/users/feeds", reader.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := decode[[]*models.Article](t, w)
	require.Len(t, feed, 1)
	assert.Equal(t, "Go in anger", feed[0].Title)
}

func TestMessagingEndpoints(t *testing.T) {
	router := newTestRouter(t)

	alice := register(t, router, "alice@example.com")
	bob := register(t, router, "bob@example.com")

	w := doJSON(t, router, http.MethodPost, "/messages/"+bob.ID, alice.AccessToken,
		gin.H{"content": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/messages/"+alice.ID, alice.AccessToken,
		gin.H{"content": "to myself"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/messages/"+alice.ID, bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	conv := decode[[]*models.Message](t, w)
	require.Len(t, conv, 1)
	assert.False(t, conv[0].IsRead)

	w = doJSON(t, router, http.MethodPost, "/messages/"+alice.ID+"/read", bob.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/messages/"+alice.ID, bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	conv = decode[[]*models.Message](t, w)
	require.Len(t, conv, 1)
	assert.True(t, conv[0].IsRead)
}
