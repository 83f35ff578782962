package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

const topicColumns = `id, title, description, created_at, updated_at`

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// Create inserts a new topic, keeping the caller's casing of the title
func (r *topicRepo) Create(ctx context.Context, q database.Querier, topic *models.Topic) error {
	query := `
		INSERT INTO topics (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	now := time.Now()
	_, err := q.ExecContext(ctx, query,
		topic.ID, topic.Title, topic.Description, now, now,
	)
	return err
}

// GetByID retrieves a topic by ID
func (r *topicRepo) GetByID(ctx context.Context, id string) (*models.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE id = $1"
	topic, err := scanTopic(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// GetByTitleFold retrieves a topic by case-insensitive title match.
// Uniqueness of titles is enforced through this lookup, not a
// collation constraint.
func (r *topicRepo) GetByTitleFold(ctx context.Context, q database.Querier, title string) (*models.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE LOWER(title) = LOWER($1)"
	topic, err := scanTopic(q.QueryRowContext(ctx, query, title))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// List retrieves all topics
func (r *topicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	return r.queryTopics(ctx, "SELECT "+topicColumns+" FROM topics ORDER BY title")
}

// ListForArticle retrieves the topics associated with an article
func (r *topicRepo) ListForArticle(ctx context.Context, articleID string) ([]*models.Topic, error) {
	query := `
		SELECT t.id, t.title, t.description, t.created_at, t.updated_at
		FROM topics t
		JOIN article_topics at ON at.topic_id = t.id
		WHERE at.article_id = $1
	`
	return r.queryTopics(ctx, query, articleID)
}

// ListForUser retrieves the topics a user has declared interest in
func (r *topicRepo) ListForUser(ctx context.Context, userID string) ([]*models.Topic, error) {
	query := `
		SELECT t.id, t.title, t.description, t.created_at, t.updated_at
		FROM topics t
		JOIN user_topics ut ON ut.topic_id = t.id
		WHERE ut.user_id = $1
	`
	return r.queryTopics(ctx, query, userID)
}

// Search retrieves topics whose title contains the pattern
func (r *topicRepo) Search(ctx context.Context, pattern string) ([]*models.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE title ILIKE $1"
	return r.queryTopics(ctx, query, pattern)
}

func (r *topicRepo) queryTopics(ctx context.Context, query string, args ...any) ([]*models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*models.Topic
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

func scanTopic(row rowScanner) (*models.Topic, error) {
	var topic models.Topic
	err := row.Scan(
		&topic.ID, &topic.Title, &topic.Description,
		&topic.CreatedAt, &topic.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}
