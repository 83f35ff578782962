package repository

import (
	"context"
	"fmt"

	"github.com/ibimina/chatter-api/internal/database"
)

// Edge names one directed-edge relation: its table and the columns of
// the edge's two endpoints. The table and column names come from the
// fixed set below, never from request input.
type Edge struct {
	Table   string
	FromCol string
	ToCol   string
}

var (
	// FollowEdge: follower -> followed user
	FollowEdge = Edge{Table: "user_follows", FromCol: "follower_id", ToCol: "following_id"}
	// LikeEdge: user -> liked article
	LikeEdge = Edge{Table: "article_likes", FromCol: "user_id", ToCol: "article_id"}
	// BookmarkEdge: user -> bookmarked article
	BookmarkEdge = Edge{Table: "article_bookmarks", FromCol: "user_id", ToCol: "article_id"}
	// TopicInterestEdge: user -> topic of interest
	TopicInterestEdge = Edge{Table: "user_topics", FromCol: "user_id", ToCol: "topic_id"}
	// ArticleTopicEdge: article -> its topic
	ArticleTopicEdge = Edge{Table: "article_topics", FromCol: "article_id", ToCol: "topic_id"}
)

// edgeRepo is the concrete implementation of EdgeRepository
type edgeRepo struct {
	db *database.DB
}

// NewEdgeRepo creates a new edge repository
func NewEdgeRepo(db *database.DB) EdgeRepository {
	return &edgeRepo{db: db}
}

// Exists reports whether the (from, to) edge is present
func (r *edgeRepo) Exists(ctx context.Context, q database.Querier, e Edge, from, to string) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)",
		e.Table, e.FromCol, e.ToCol,
	)
	var exists bool
	err := q.QueryRowContext(ctx, query, from, to).Scan(&exists)
	return exists, err
}

// Add inserts the (from, to) edge. Inserting an edge that already
// exists is a no-op rather than an error, so a toggle that loses a
// race to a concurrent add settles on membership.
func (r *edgeRepo) Add(ctx context.Context, q database.Querier, e Edge, from, to string) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		e.Table, e.FromCol, e.ToCol,
	)
	_, err := q.ExecContext(ctx, query, from, to)
	return err
}

// Remove deletes the (from, to) edge if present
func (r *edgeRepo) Remove(ctx context.Context, q database.Querier, e Edge, from, to string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		e.Table, e.FromCol, e.ToCol,
	)
	_, err := q.ExecContext(ctx, query, from, to)
	return err
}

// RemoveAllFrom deletes every edge leaving from. Used when an
// article's topic set is replaced wholesale.
func (r *edgeRepo) RemoveAllFrom(ctx context.Context, q database.Querier, e Edge, from string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", e.Table, e.FromCol)
	_, err := q.ExecContext(ctx, query, from)
	return err
}

// Outgoing returns the ids reachable from the given endpoint
func (r *edgeRepo) Outgoing(ctx context.Context, e Edge, from string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", e.ToCol, e.Table, e.FromCol)
	return r.queryIDs(ctx, query, from)
}

// Incoming returns the ids pointing at the given endpoint
func (r *edgeRepo) Incoming(ctx context.Context, e Edge, to string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", e.FromCol, e.Table, e.ToCol)
	return r.queryIDs(ctx, query, to)
}

// CountOutgoing returns the cardinality of the outgoing edge set
func (r *edgeRepo) CountOutgoing(ctx context.Context, e Edge, from string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", e.Table, e.FromCol)
	var count int
	err := r.db.QueryRowContext(ctx, query, from).Scan(&count)
	return count, err
}

// CountIncoming returns the cardinality of the incoming edge set
func (r *edgeRepo) CountIncoming(ctx context.Context, e Edge, to string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", e.Table, e.ToCol)
	var count int
	err := r.db.QueryRowContext(ctx, query, to).Scan(&count)
	return count, err
}

func (r *edgeRepo) queryIDs(ctx context.Context, query, arg string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
