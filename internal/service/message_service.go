package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/rs/zerolog"
)

// messageService implements MessageService
type messageService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newMessageService(repos *repository.Repositories, log zerolog.Logger) MessageService {
	return &messageService{
		repos: repos,
		log:   log.With().Str("component", "messages").Logger(),
	}
}

// Send persists a directed message. Self-messaging is rejected; no
// delivery guarantee beyond persistence exists.
func (s *messageService) Send(ctx context.Context, senderID, receiverID string, in *models.MessageInput) (*models.Message, error) {
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrInvalidArgument)
	}

	receiver, err := s.repos.User.GetByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up receiver: %w", err)
	}
	if receiver == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	message := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    in.Content,
	}
	if err := s.repos.Message.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// ListForUser returns every message the user sent or received
func (s *messageService) ListForUser(ctx context.Context, userID string) ([]*models.Message, error) {
	return s.repos.Message.ListForUser(ctx, userID)
}

// Conversation returns the messages exchanged with another user
func (s *messageService) Conversation(ctx context.Context, userID, otherID string) ([]*models.Message, error) {
	other, err := s.repos.User.GetByID(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if other == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return s.repos.Message.Conversation(ctx, userID, otherID)
}

// MarkConversationRead marks the sender's unread messages to the
// receiver as read.
func (s *messageService) MarkConversationRead(ctx context.Context, receiverID, senderID string) error {
	return s.repos.Message.MarkConversationRead(ctx, senderID, receiverID)
}
