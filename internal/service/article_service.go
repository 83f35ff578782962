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

// articleService implements ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("component", "articles").Logger(),
	}
}

// Create inserts an article and associates it with the resolved topic
// set, all in one transaction.
func (s *articleService) Create(ctx context.Context, authorID string, in *models.ArticleInput) (*models.Article, error) {
	if errs := validation.ValidateArticleInput(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, errs[0].Message)
	}

	article := &models.Article{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Content:     in.Content,
		CoverImage:  in.CoverImage,
		AuthorID:    authorID,
		IsPublished: in.IsPublished,
		ReadingTime: in.ReadingTime,
	}

	err := s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		if err := s.repos.Article.Create(ctx, q, article); err != nil {
			return fmt.Errorf("failed to create article: %w", err)
		}
		return s.replaceTopics(ctx, q, article.ID, in.Topics)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("author_id", authorID).Msg("Article created")
	return s.load(ctx, article.ID)
}

// Update rewrites an article's scalar fields and replaces its topic
// set with the resolved input list. Only the author may update; a
// missing article and someone else's article both come back NotFound
// so existence is not leaked.
func (s *articleService) Update(ctx context.Context, actorID, articleID string, in *models.ArticleInput) (*models.Article, error) {
	if errs := validation.ValidateArticleInput(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, errs[0].Message)
	}

	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil || article.AuthorID != actorID {
		return nil, fmt.Errorf("%w: article", ErrNotFound)
	}

	article.Title = in.Title
	article.Subtitle = in.Subtitle
	article.Content = in.Content
	article.CoverImage = in.CoverImage
	article.IsPublished = in.IsPublished
	article.ReadingTime = in.ReadingTime

	err = s.repos.Tx.RunInTx(ctx, func(q database.Querier) error {
		if err := s.repos.Article.Update(ctx, q, article); err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		// Replacement, not merge: associations absent from the new
		// list are dropped.
		if err := s.repos.Edge.RemoveAllFrom(ctx, q, repository.ArticleTopicEdge, article.ID); err != nil {
			return err
		}
		return s.replaceTopics(ctx, q, article.ID, in.Topics)
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, articleID)
}

// Get retrieves an article and bumps its view counter
func (s *articleService) Get(ctx context.Context, articleID string) (*models.Article, error) {
	article, err := s.load(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Article.IncrementViews(ctx, articleID); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	article.ViewsCount++
	return article, nil
}

// ListByAuthor retrieves a user's articles
func (s *articleService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error) {
	articles, err := s.repos.Article.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		if err := decorateArticle(ctx, s.repos, article); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// ListBookmarked retrieves the articles the user has bookmarked
func (s *articleService) ListBookmarked(ctx context.Context, userID string) ([]*models.Article, error) {
	articles, err := s.repos.Article.ListBookmarked(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		if err := decorateArticle(ctx, s.repos, article); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// Delete removes an article. Author only; missing and not-yours are
// both NotFound.
func (s *articleService) Delete(ctx context.Context, actorID, articleID string) error {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil || article.AuthorID != actorID {
		return fmt.Errorf("%w: article", ErrNotFound)
	}
	return s.repos.Article.Delete(ctx, articleID)
}

// Search runs a substring match across published article titles and
// subtitles, usernames and topic titles.
func (s *articleService) Search(ctx context.Context, term string) (*models.SearchResult, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search string cannot be empty", ErrInvalidArgument)
	}
	pattern := "%" + term + "%"

	articles, err := s.repos.Article.SearchPublished(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	users, err := s.repos.User.SearchByUsername(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	topics, err := s.repos.Topic.Search(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search topics: %w", err)
	}

	return &models.SearchResult{
		Articles: articles,
		Users:    users,
		Topics:   topics,
	}, nil
}

// replaceTopics resolves titles and attaches the resulting topics
func (s *articleService) replaceTopics(ctx context.Context, q database.Querier, articleID string, titles []string) error {
	topics, err := resolveTopics(ctx, q, s.repos.Topic, titles)
	if err != nil {
		return err
	}
	for _, topic := range topics {
		if err := s.repos.Edge.Add(ctx, q, repository.ArticleTopicEdge, articleID, topic.ID); err != nil {
			return fmt.Errorf("failed to attach topic %q: %w", topic.Title, err)
		}
	}
	return nil
}

// load fetches and decorates an article, mapping absence to NotFound
func (s *articleService) load(ctx context.Context, articleID string) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return nil, fmt.Errorf("%w: article", ErrNotFound)
	}
	if err := decorateArticle(ctx, s.repos, article); err != nil {
		return nil, err
	}
	return article, nil
}

// decorateArticle fills the derived read-side fields: the topic list
// and the like/bookmark set cardinalities. Counts are always computed
// from the edge sets, never stored.
func decorateArticle(ctx context.Context, repos *repository.Repositories, article *models.Article) error {
	topics, err := repos.Topic.ListForArticle(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("failed to load article topics: %w", err)
	}
	likes, err := repos.Edge.CountIncoming(ctx, repository.LikeEdge, article.ID)
	if err != nil {
		return fmt.Errorf("failed to count likes: %w", err)
	}
	bookmarks, err := repos.Edge.CountIncoming(ctx, repository.BookmarkEdge, article.ID)
	if err != nil {
		return fmt.Errorf("failed to count bookmarks: %w", err)
	}

	article.Topics = topics
	article.LikeCount = likes
	article.BookmarkCount = bookmarks
	return nil
}
