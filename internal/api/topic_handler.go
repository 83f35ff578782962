package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(services *service.Services, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		services: services,
		log:      log.With().Str("handler", "topics").Logger(),
	}
}

// List handles GET /topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.services.Topic.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetByTitle handles GET /topics/by-title/:title
func (h *TopicHandler) GetByTitle(c *gin.Context) {
	topic, err := h.services.Topic.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// Create handles POST /topics
func (h *TopicHandler) Create(c *gin.Context) {
	var in models.TopicInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topic, err := h.services.Topic.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// ToggleInterest handles POST /topics/follow/:topic_id
func (h *TopicHandler) ToggleInterest(c *gin.Context) {
	interested, topic, err := h.services.Engagement.ToggleTopicInterest(c.Request.Context(), currentUserID(c), c.Param("topic_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("unfollowed topic %q", topic.Title)
	if interested {
		message = fmt.Sprintf("following topic %q", topic.Title)
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "following": interested})
}
