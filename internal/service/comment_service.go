package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/ibimina/chatter-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService implements CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("component", "comments").Logger(),
	}
}

// Add attaches a comment to an article, optionally as a reply to an
// existing comment. A parent on a different article is NotFound, the
// same as a parent that does not exist.
func (s *commentService) Add(ctx context.Context, articleID, userID, content string, parentID *string) (*models.Comment, error) {
	in := models.CommentInput{Content: content}
	if errs := validation.ValidateCommentInput(&in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, errs[0].Message)
	}

	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: article", ErrNotFound)
	}

	if parentID != nil {
		parent, err := s.repos.Comment.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up parent comment: %w", err)
		}
		if parent == nil || parent.ArticleID != articleID {
			return nil, fmt.Errorf("%w: comment", ErrNotFound)
		}
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   content,
	}

	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		if err := s.repos.Comment.Create(ctx, q, comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		if article.AuthorID == userID {
			return nil
		}
		return s.repos.Notification.Create(ctx, q, &models.Notification{
			ID:            uuid.NewString(),
			UserID:        article.AuthorID,
			TriggeredByID: userID,
			Type:          models.NotificationComment,
			ArticleID:     &article.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.repos.Comment.GetByID(ctx, comment.ID)
}

// ListTree returns an article's comments as a reply tree. The flat
// creation-ordered list is threaded through the parent index; depth is
// unbounded.
func (s *commentService) ListTree(ctx context.Context, articleID string) ([]*models.Comment, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: article", ErrNotFound)
	}

	flat, err := s.repos.Comment.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	byID := make(map[string]*models.Comment, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}

	var roots []*models.Comment
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return roots, nil
}
