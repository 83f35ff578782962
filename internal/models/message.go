package models

import (
	"time"
)

// Message represents a direct message between two users
type Message struct {
	ID         string     `json:"id" db:"id"`
	SenderID   string     `json:"sender_id" db:"sender_id"`
	ReceiverID string     `json:"receiver_id" db:"receiver_id"`
	Content    *string    `json:"content,omitempty" db:"content"`
	IsRead     bool       `json:"is_read" db:"is_read"`
	ReadAt     *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// MessageInput is the body of POST /messages/:user_id
type MessageInput struct {
	Content *string `json:"content,omitempty"`
}
