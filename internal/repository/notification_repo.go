package repository

import (
	"context"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

// notificationRepo is the concrete implementation of NotificationRepository
type notificationRepo struct {
	db *database.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *database.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

// Create inserts a notification. It takes a Querier so the row commits
// in the same transaction as the engagement write that triggered it.
func (r *notificationRepo) Create(ctx context.Context, q database.Querier, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, triggered_by_id, type, article_id, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	_, err := q.ExecContext(ctx, query,
		n.ID, n.UserID, n.TriggeredByID, n.Type, n.ArticleID, n.IsRead,
		now, now,
	)
	return err
}

// ListForUser retrieves a user's notifications, newest first
func (r *notificationRepo) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, triggered_by_id, type, article_id, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID, &n.UserID, &n.TriggeredByID, &n.Type, &n.ArticleID,
			&n.IsRead, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// MarkRead marks a notification as read, but only for its receiver.
// Returns whether a row matched.
func (r *notificationRepo) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *notificationRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE", userID,
	).Scan(&count)
	return count, err
}
