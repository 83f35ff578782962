package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/rs/zerolog"
)

// engagementService implements EngagementService. Every toggle is a
// read-check-then-write pair inside one transaction; membership, not
// counters, is the source of truth for every relation.
type engagementService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newEngagementService(repos *repository.Repositories, log zerolog.Logger) EngagementService {
	return &engagementService{
		repos: repos,
		log:   log.With().Str("component", "engagement").Logger(),
	}
}

// ToggleLike flips the actor's membership in the article's liked-by
// set and returns the resulting state. Adds a notification for the
// author when a like lands on someone else's article.
func (s *engagementService) ToggleLike(ctx context.Context, actorID, articleID string) (bool, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return false, fmt.Errorf("%w: article", ErrNotFound)
	}

	var liked bool
	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		exists, err := s.repos.Edge.Exists(ctx, q, repository.LikeEdge, actorID, articleID)
		if err != nil {
			return err
		}
		if exists {
			liked = false
			return s.repos.Edge.Remove(ctx, q, repository.LikeEdge, actorID, articleID)
		}
		liked = true
		if err := s.repos.Edge.Add(ctx, q, repository.LikeEdge, actorID, articleID); err != nil {
			return err
		}
		return s.notify(ctx, q, article.AuthorID, actorID, models.NotificationLike, &article.ID)
	})
	if err != nil {
		return false, err
	}

	s.log.Debug().Str("actor", actorID).Str("article", articleID).Bool("liked", liked).Msg("Like toggled")
	return liked, nil
}

// ToggleBookmark flips the actor's membership in the article's
// bookmarked-by set. Same contract as ToggleLike, separate relation.
func (s *engagementService) ToggleBookmark(ctx context.Context, actorID, articleID string) (bool, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return false, fmt.Errorf("%w: article", ErrNotFound)
	}

	var bookmarked bool
	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		exists, err := s.repos.Edge.Exists(ctx, q, repository.BookmarkEdge, actorID, articleID)
		if err != nil {
			return err
		}
		if exists {
			bookmarked = false
			return s.repos.Edge.Remove(ctx, q, repository.BookmarkEdge, actorID, articleID)
		}
		bookmarked = true
		return s.repos.Edge.Add(ctx, q, repository.BookmarkEdge, actorID, articleID)
	})
	if err != nil {
		return false, err
	}
	return bookmarked, nil
}

// ToggleFollow flips the actor's membership in the target's follower
// set. The relation is one directed-edge set, so the actor's
// "following" view and the target's "followers" view can never
// disagree. Self-follow is rejected.
func (s *engagementService) ToggleFollow(ctx context.Context, actorID, targetID string) (bool, error) {
	if actorID == targetID {
		return false, fmt.Errorf("%w: cannot follow yourself", ErrInvalidArgument)
	}

	target, err := s.repos.User.GetByID(ctx, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if target == nil {
		return false, fmt.Errorf("%w: user", ErrNotFound)
	}

	var following bool
	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		exists, err := s.repos.Edge.Exists(ctx, q, repository.FollowEdge, actorID, targetID)
		if err != nil {
			return err
		}
		if exists {
			following = false
			return s.repos.Edge.Remove(ctx, q, repository.FollowEdge, actorID, targetID)
		}
		following = true
		if err := s.repos.Edge.Add(ctx, q, repository.FollowEdge, actorID, targetID); err != nil {
			return err
		}
		return s.notify(ctx, q, targetID, actorID, models.NotificationFollow, nil)
	})
	if err != nil {
		return false, err
	}

	s.log.Debug().Str("actor", actorID).Str("target", targetID).Bool("following", following).Msg("Follow toggled")
	return following, nil
}

// Unfollow removes the follow edge unconditionally. Unlike the toggle
// it is an error to unfollow someone the actor is not following.
func (s *engagementService) Unfollow(ctx context.Context, actorID, targetID string) error {
	target, err := s.repos.User.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if target == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	return s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		exists, err := s.repos.Edge.Exists(ctx, q, repository.FollowEdge, actorID, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: not following this user", ErrInvalidArgument)
		}
		return s.repos.Edge.Remove(ctx, q, repository.FollowEdge, actorID, targetID)
	})
}

// ToggleTopicInterest flips the actor's membership in the topic's
// interested-user set and returns the resulting state with the topic.
func (s *engagementService) ToggleTopicInterest(ctx context.Context, actorID, topicID string) (bool, *models.Topic, error) {
	topic, err := s.repos.Topic.GetByID(ctx, topicID)
	if err != nil {
		return false, nil, fmt.Errorf("failed to look up topic: %w", err)
	}
	if topic == nil {
		return false, nil, fmt.Errorf("%w: topic", ErrNotFound)
	}

	var interested bool
	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		exists, err := s.repos.Edge.Exists(ctx, q, repository.TopicInterestEdge, actorID, topicID)
		if err != nil {
			return err
		}
		if exists {
			interested = false
			return s.repos.Edge.Remove(ctx, q, repository.TopicInterestEdge, actorID, topicID)
		}
		interested = true
		return s.repos.Edge.Add(ctx, q, repository.TopicInterestEdge, actorID, topicID)
	})
	if err != nil {
		return false, nil, err
	}
	return interested, topic, nil
}

// Followers returns the users following the given user
func (s *engagementService) Followers(ctx context.Context, userID string) ([]*models.User, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.repos.Edge.Incoming(ctx, repository.FollowEdge, userID)
	if err != nil {
		return nil, err
	}
	return s.repos.User.ListByIDs(ctx, ids)
}

// Following returns the users the given user follows
func (s *engagementService) Following(ctx context.Context, userID string) ([]*models.User, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.repos.Edge.Outgoing(ctx, repository.FollowEdge, userID)
	if err != nil {
		return nil, err
	}
	return s.repos.User.ListByIDs(ctx, ids)
}

// FollowStatus reports whether the actor follows the target together
// with the target's follower and following counts.
func (s *engagementService) FollowStatus(ctx context.Context, actorID, targetID string) (*models.FollowStatus, error) {
	if err := s.requireUser(ctx, targetID); err != nil {
		return nil, err
	}

	isFollowing, err := s.repos.Edge.Exists(ctx, s.repos.Q, repository.FollowEdge, actorID, targetID)
	if err != nil {
		return nil, err
	}
	followers, err := s.repos.Edge.CountIncoming(ctx, repository.FollowEdge, targetID)
	if err != nil {
		return nil, err
	}
	following, err := s.repos.Edge.CountOutgoing(ctx, repository.FollowEdge, targetID)
	if err != nil {
		return nil, err
	}

	return &models.FollowStatus{
		IsFollowing:    isFollowing,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

// Suggestions returns users the actor does not follow yet
func (s *engagementService) Suggestions(ctx context.Context, actorID string, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repos.User.Suggestions(ctx, actorID, limit)
}

// ComposeFeed returns the published articles under any topic the user
// has declared interest in.
func (s *engagementService) ComposeFeed(ctx context.Context, userID string) ([]*models.Article, error) {
	articles, err := s.repos.Article.Feed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compose feed: %w", err)
	}
	for _, article := range articles {
		if err := decorateArticle(ctx, s.repos, article); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// notify records a notification unless the actor is notifying themself
func (s *engagementService) notify(ctx context.Context, q database.Querier, userID, actorID string, typ models.NotificationType, articleID *string) error {
	if userID == actorID {
		return nil
	}
	return s.repos.Notification.Create(ctx, q, &models.Notification{
		ID:            uuid.NewString(),
		UserID:        userID,
		TriggeredByID: actorID,
		Type:          typ,
		ArticleID:     articleID,
	})
}

func (s *engagementService) requireUser(ctx context.Context, userID string) error {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	return nil
}

// resolveTopics maps free-text titles to topics, creating the ones
// that do not exist. Matching is case-insensitive on the trimmed
// title; a created topic keeps the caller's casing. The batch map
// makes a fresh topic visible to later titles in the same call, so
// ["Go", "go"] yields one topic, not two. Output order follows first
// occurrence in the input.
func resolveTopics(ctx context.Context, q database.Querier, topics repository.TopicRepository, titles []string) ([]*models.Topic, error) {
	seen := make(map[string]*models.Topic)
	var resolved []*models.Topic

	for _, raw := range titles {
		title := strings.TrimSpace(raw)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			continue
		}

		topic, err := topics.GetByTitleFold(ctx, q, title)
		if err != nil {
			return nil, fmt.Errorf("failed to look up topic %q: %w", title, err)
		}
		if topic == nil {
			topic = &models.Topic{ID: uuid.NewString(), Title: title}
			if err := topics.Create(ctx, q, topic); err != nil {
				return nil, fmt.Errorf("failed to create topic %q: %w", title, err)
			}
		}

		seen[key] = topic
		resolved = append(resolved, topic)
	}
	return resolved, nil
}
