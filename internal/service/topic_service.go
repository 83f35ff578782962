package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/ibimina/chatter-api/internal/validation"
	"github.com/rs/zerolog"
)

// topicService implements TopicService
type topicService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTopicService(repos *repository.Repositories, log zerolog.Logger) TopicService {
	return &topicService{
		repos: repos,
		log:   log.With().Str("component", "topics").Logger(),
	}
}

// List retrieves all topics
func (s *topicService) List(ctx context.Context) ([]*models.Topic, error) {
	return s.repos.Topic.List(ctx)
}

// GetByTitle retrieves a topic by case-insensitive title
func (s *topicService) GetByTitle(ctx context.Context, title string) (*models.Topic, error) {
	topic, err := s.repos.Topic.GetByTitleFold(ctx, s.repos.Q, title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up topic: %w", err)
	}
	if topic == nil {
		return nil, fmt.Errorf("%w: topic", ErrNotFound)
	}
	return topic, nil
}

// Create inserts a topic explicitly. A title that already exists under
// any casing is a Conflict.
func (s *topicService) Create(ctx context.Context, in *models.TopicInput) (*models.Topic, error) {
	if errs := validation.ValidateTopicInput(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, errs[0].Message)
	}

	existing, err := s.repos.Topic.GetByTitleFold(ctx, s.repos.Q, in.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to look up topic: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: topic already exists", ErrConflict)
	}

	topic := &models.Topic{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.repos.Topic.Create(ctx, s.repos.Q, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.log.Info().Str("topic_id", topic.ID).Str("title", topic.Title).Msg("Topic created")
	return topic, nil
}
