package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

const articleColumns = `id, title, subtitle, content, cover_image, author_id,
	is_published, views_count, reading_time, created_at, updated_at`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, q database.Querier, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, subtitle, content, cover_image, author_id,
			is_published, reading_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	now := time.Now()
	_, err := q.ExecContext(ctx, query,
		article.ID, article.Title, article.Subtitle, article.Content,
		article.CoverImage, article.AuthorID, article.IsPublished,
		article.ReadingTime, now, now,
	)
	return err
}

// Update rewrites an article's scalar fields
func (r *articleRepo) Update(ctx context.Context, q database.Querier, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, subtitle = $3, content = $4, cover_image = $5,
			is_published = $6, reading_time = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := q.ExecContext(ctx, query,
		article.ID, article.Title, article.Subtitle, article.Content,
		article.CoverImage, article.IsPublished, article.ReadingTime,
	)
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)
	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, q database.Querier, id string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// ListByAuthor retrieves all articles authored by a user
func (r *articleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE author_id = $1 ORDER BY created_at", articleColumns)
	return r.queryArticles(ctx, query, authorID)
}

// ListBookmarked retrieves the articles a user has bookmarked
func (r *articleRepo) ListBookmarked(ctx context.Context, userID string) ([]*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles a
		JOIN article_bookmarks b ON b.article_id = a.id
		WHERE b.user_id = $1
	`, prefixColumns("a"))
	return r.queryArticles(ctx, query, userID)
}

// Feed retrieves the published articles under any topic the user has
// declared interest in. Unpublished articles never appear, authored by
// the user or not.
func (r *articleRepo) Feed(ctx context.Context, userID string) ([]*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s FROM articles a
		JOIN article_topics at ON at.article_id = a.id
		JOIN user_topics ut ON ut.topic_id = at.topic_id
		WHERE ut.user_id = $1 AND a.is_published = TRUE
	`, prefixColumns("a"))
	return r.queryArticles(ctx, query, userID)
}

// SearchPublished retrieves published articles whose title or subtitle
// contains the pattern, case-insensitively.
func (r *articleRepo) SearchPublished(ctx context.Context, pattern string) ([]*models.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM articles
		WHERE is_published = TRUE AND (title ILIKE $1 OR subtitle ILIKE $1)
	`, articleColumns)
	return r.queryArticles(ctx, query, pattern)
}

// IncrementViews bumps the article's view counter
func (r *articleRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE articles SET views_count = views_count + 1 WHERE id = $1", id)
	return err
}

// Delete removes an article. Comments and edge rows cascade.
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	err := row.Scan(
		&article.ID, &article.Title, &article.Subtitle, &article.Content,
		&article.CoverImage, &article.AuthorID, &article.IsPublished,
		&article.ViewsCount, &article.ReadingTime,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// prefixColumns qualifies the article column list with a table alias
// for joined queries.
func prefixColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.title, %[1]s.subtitle, %[1]s.content, %[1]s.cover_image,
		%[1]s.author_id, %[1]s.is_published, %[1]s.views_count, %[1]s.reading_time,
		%[1]s.created_at, %[1]s.updated_at`, alias)
}
