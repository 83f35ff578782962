package models

import (
	"time"
)

// NotificationType tags what triggered a notification
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationFollow  NotificationType = "follow"
	NotificationComment NotificationType = "comment"
)

// Notification records an event delivered to a user: who triggered it,
// what kind of event it was, and the article involved if any.
type Notification struct {
	ID            string           `json:"id" db:"id"`
	UserID        string           `json:"user_id" db:"user_id"`
	TriggeredByID string           `json:"triggered_by_id" db:"triggered_by_id"`
	Type          NotificationType `json:"type" db:"type"`
	ArticleID     *string          `json:"article_id,omitempty" db:"article_id"`
	IsRead        bool             `json:"is_read" db:"is_read"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
}
