package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article CRUD, likes, comments and search
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "articles").Logger(),
	}
}

// Create handles POST /articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), currentUserID(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update handles PATCH /articles/:article_id
func (h *ArticleHandler) Update(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), currentUserID(c), c.Param("article_id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Get handles GET /articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListByAuthor handles GET /articles/user/:user_id
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	articles, err := h.services.Article.ListByAuthor(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Delete handles DELETE /articles/:article_id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), currentUserID(c), c.Param("article_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike handles POST /articles/:article_id/like
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	liked, err := h.services.Engagement.ToggleLike(c.Request.Context(), currentUserID(c), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "article unliked successfully"
	if liked {
		message = "article liked successfully"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "liked": liked})
}

// Comment handles POST /articles/:article_id/comment
func (h *ArticleHandler) Comment(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.services.Comment.Add(c.Request.Context(), c.Param("article_id"), currentUserID(c), in.Content, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Comments handles GET /articles/:article_id/comments
func (h *ArticleHandler) Comments(c *gin.Context) {
	comments, err := h.services.Comment.ListTree(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Reply handles POST /articles/:article_id/comment/:comment_id/reply
func (h *ArticleHandler) Reply(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	parentID := c.Param("comment_id")
	comment, err := h.services.Comment.Add(c.Request.Context(), c.Param("article_id"), currentUserID(c), in.Content, &parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Search handles GET /articles/search?q=...
func (h *ArticleHandler) Search(c *gin.Context) {
	result, err := h.services.Article.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
