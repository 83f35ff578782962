package service

import (
	"context"
	"fmt"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/ibimina/chatter-api/internal/validation"
	"github.com/rs/zerolog"
)

// userService implements UserService
type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) UserService {
	return &userService{
		repos: repos,
		log:   log.With().Str("component", "users").Logger(),
	}
}

// GetByUsername retrieves a public profile
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.User.List(ctx)
}

// Dashboard aggregates the user's profile, interests, own articles and
// current feed.
func (s *userService) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	topics, err := s.repos.Topic.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interests: %w", err)
	}
	articles, err := s.repos.Article.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	feeds, err := s.repos.Article.Feed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	return &models.Dashboard{
		User:          user,
		Topics:        topics,
		Articles:      articles,
		Feeds:         feeds,
		ArticlesCount: len(articles),
	}, nil
}

// UpdateProfile applies a partial update and returns the fresh profile
func (s *userService) UpdateProfile(ctx context.Context, userID string, upd *models.ProfileUpdate) (*models.User, error) {
	if errs := validation.ValidateProfileUpdate(upd); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidArgument, errs[0].Field, errs[0].Message)
	}

	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if err := s.repos.User.UpdateProfile(ctx, userID, upd); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.repos.User.GetByID(ctx, userID)
}

// Delete removes the account. Authored articles and their comments,
// messages, notifications and every edge row cascade away with it.
func (s *userService) Delete(ctx context.Context, userID string) error {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	if err := s.repos.User.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.log.Info().Str("user_id", userID).Msg("User deleted")
	return nil
}

// UsernameTaken reports whether the username is already in use
func (s *userService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.repos.User.UsernameExists(ctx, username)
}

// AddInterests resolves the given titles and attaches the topics to
// the user's interest set. Topics already held are left alone.
func (s *userService) AddInterests(ctx context.Context, userID string, titles []string) ([]*models.Topic, error) {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		topics, err := resolveTopics(ctx, q, s.repos.Topic, titles)
		if err != nil {
			return err
		}
		for _, topic := range topics {
			if err := s.repos.Edge.Add(ctx, q, repository.TopicInterestEdge, userID, topic.ID); err != nil {
				return fmt.Errorf("failed to attach interest %q: %w", topic.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Topic.ListForUser(ctx, userID)
}

// SetLastActive stamps the user's last activity time
func (s *userService) SetLastActive(ctx context.Context, userID string) error {
	return s.repos.User.SetLastActive(ctx, userID)
}
