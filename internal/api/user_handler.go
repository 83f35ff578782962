package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "users").Logger(),
	}
}

// GetByUsername handles GET /users/:username
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.services.User.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.services.User.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckUsername handles GET /users/check_username/:username
func (h *UserHandler) CheckUsername(c *gin.Context) {
	username := c.Param("username")
	taken, err := h.services.User.UsernameTaken(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username, "available": true})
}

// UpdateProfile handles PUT /users. Only fields present in the body
// are applied.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.services.User.UpdateProfile(c.Request.Context(), currentUserID(c), &upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.services.User.Delete(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddInterests handles PUT /users/add_topics
func (h *UserHandler) AddInterests(c *gin.Context) {
	var in models.InterestsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topics, err := h.services.User.AddInterests(c.Request.Context(), currentUserID(c), in.Topics)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// Feeds handles GET /users/feeds
func (h *UserHandler) Feeds(c *gin.Context) {
	articles, err := h.services.Engagement.ComposeFeed(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Dashboard handles GET /users/dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.services.User.Dashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
