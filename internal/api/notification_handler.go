package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(services *service.Services, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		services: services,
		log:      log.With().Str("handler", "notifications").Logger(),
	}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.services.Notification.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /notifications/unread_count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.services.Notification.UnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles POST /notifications/:notification_id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.services.Notification.MarkRead(c.Request.Context(), c.Param("notification_id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
