package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// BookmarkHandler handles bookmark endpoints
type BookmarkHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(services *service.Services, log zerolog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		services: services,
		log:      log.With().Str("handler", "bookmarks").Logger(),
	}
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(c *gin.Context) {
	articles, err := h.services.Article.ListBookmarked(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Toggle handles POST /bookmarks/:article_id
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	bookmarked, err := h.services.Engagement.ToggleBookmark(c.Request.Context(), currentUserID(c), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "article removed from bookmarks"
	if bookmarked {
		message = "article bookmarked successfully"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "bookmarked": bookmarked})
}
