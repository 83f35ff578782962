package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// FollowHandler handles follow-graph endpoints
type FollowHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(services *service.Services, log zerolog.Logger) *FollowHandler {
	return &FollowHandler{
		services: services,
		log:      log.With().Str("handler", "follow").Logger(),
	}
}

// Toggle handles POST /follow/users/:user_id
func (h *FollowHandler) Toggle(c *gin.Context) {
	following, err := h.services.Engagement.ToggleFollow(c.Request.Context(), currentUserID(c), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "you are no longer following this user"
	if following {
		message = "you are now following this user"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "following": following})
}

// Unfollow handles DELETE /follow/users/:user_id
func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.services.Engagement.Unfollow(c.Request.Context(), currentUserID(c), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Followers handles GET /follow/users/:user_id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	users, err := h.services.Engagement.Followers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Following handles GET /follow/users/:user_id/following
func (h *FollowHandler) Following(c *gin.Context) {
	users, err := h.services.Engagement.Following(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// MyFollowers handles GET /follow/me/followers
func (h *FollowHandler) MyFollowers(c *gin.Context) {
	users, err := h.services.Engagement.Followers(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// MyFollowing handles GET /follow/me/following
func (h *FollowHandler) MyFollowing(c *gin.Context) {
	users, err := h.services.Engagement.Following(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Status handles GET /follow/users/:user_id/status
func (h *FollowHandler) Status(c *gin.Context) {
	status, err := h.services.Engagement.FollowStatus(c.Request.Context(), currentUserID(c), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Suggestions handles GET /follow/suggestions?limit=...
func (h *FollowHandler) Suggestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.services.Engagement.Suggestions(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
