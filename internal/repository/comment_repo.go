package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

const commentColumns = `id, article_id, user_id, parent_id, content, created_at, updated_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, q database.Querier, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, user_id, parent_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now()
	_, err := q.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.UserID, comment.ParentID,
		comment.Content, now, now,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments WHERE id = $1"
	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByArticle retrieves an article's comments ordered by creation.
// Reply trees are assembled by the service from the flat list.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments WHERE article_id = $1 ORDER BY created_at"
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID, &comment.ArticleID, &comment.UserID, &comment.ParentID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
