package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// MessageHandler handles direct-messaging endpoints
type MessageHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(services *service.Services, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		services: services,
		log:      log.With().Str("handler", "messages").Logger(),
	}
}

// List handles GET /messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.services.Message.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Conversation handles GET /messages/:user_id
func (h *MessageHandler) Conversation(c *gin.Context) {
	messages, err := h.services.Message.Conversation(c.Request.Context(), currentUserID(c), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Send handles POST /messages/:user_id
func (h *MessageHandler) Send(c *gin.Context) {
	var in models.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.services.Message.Send(c.Request.Context(), currentUserID(c), c.Param("user_id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead handles POST /messages/:user_id/read. It marks the other
// user's messages to the caller as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.services.Message.MarkConversationRead(c.Request.Context(), currentUserID(c), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
