package repository

import (
	"context"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

const messageColumns = `id, sender_id, receiver_id, content, is_read, read_at, created_at, updated_at`

// messageRepo is the concrete implementation of MessageRepository
type messageRepo struct {
	db *database.DB
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(db *database.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Create inserts a new message
func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.SenderID, message.ReceiverID, message.Content,
		message.IsRead, now, now,
	)
	return err
}

// ListForUser retrieves every message sent or received by a user
func (r *messageRepo) ListForUser(ctx context.Context, userID string) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + ` FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at
	`
	return r.queryMessages(ctx, query, userID)
}

// Conversation retrieves the messages exchanged between two users,
// in either direction, ordered by creation.
func (r *messageRepo) Conversation(ctx context.Context, userID, otherID string) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + ` FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at
	`
	return r.queryMessages(ctx, query, userID, otherID)
}

// MarkConversationRead marks every unread message from sender to
// receiver as read, stamping read_at.
func (r *messageRepo) MarkConversationRead(ctx context.Context, senderID, receiverID string) error {
	query := `
		UPDATE messages
		SET is_read = TRUE, read_at = NOW(), updated_at = NOW()
		WHERE sender_id = $1 AND receiver_id = $2 AND is_read = FALSE
	`
	_, err := r.db.ExecContext(ctx, query, senderID, receiverID)
	return err
}

func (r *messageRepo) queryMessages(ctx context.Context, query string, args ...any) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead,
			&m.ReadAt, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
