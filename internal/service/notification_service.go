package service

import (
	"context"
	"fmt"

	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/rs/zerolog"
)

// notificationService implements NotificationService. Rows are created
// by the engagement and comment services inside their transactions;
// this service only reads and marks them.
type notificationService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newNotificationService(repos *repository.Repositories, log zerolog.Logger) NotificationService {
	return &notificationService{
		repos: repos,
		log:   log.With().Str("component", "notifications").Logger(),
	}
}

// ListForUser returns the user's notifications, newest first
func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	return s.repos.Notification.ListForUser(ctx, userID)
}

// MarkRead marks a notification as read. Only its receiver may; for
// anyone else the notification does not exist.
func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	ok, err := s.repos.Notification.MarkRead(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: notification", ErrNotFound)
	}
	return nil
}

// UnreadCount returns the number of unread notifications
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repos.Notification.UnreadCount(ctx, userID)
}
