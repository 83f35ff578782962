package mocks

import (
	"context"
	"strings"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
)

type edgeKey struct {
	from, to string
}

// Store is the map-backed state shared by all mock repositories. One
// store backs them all so the schema's cascade rules can be mirrored
// on delete. Querier arguments are ignored throughout; RunInTx just
// invokes its function.
type Store struct {
	Users         map[string]*models.User
	Articles      map[string]*models.Article
	Topics        map[string]*models.Topic
	Comments      map[string]*models.Comment
	Messages      map[string]*models.Message
	Notifications map[string]*models.Notification

	// table -> present edges, plus insertion order for listings
	edges     map[string]map[edgeKey]bool
	edgeOrder map[string][]edgeKey

	// creation order per entity kind, for ordered listings
	userOrder    []string
	articleOrder []string
	topicOrder   []string
	commentOrder []string
	messageOrder []string
	notifOrder   []string

	seq int

	// Err, when set, is returned by every subsequent operation.
	Err error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Users:         make(map[string]*models.User),
		Articles:      make(map[string]*models.Article),
		Topics:        make(map[string]*models.Topic),
		Comments:      make(map[string]*models.Comment),
		Messages:      make(map[string]*models.Message),
		Notifications: make(map[string]*models.Notification),
		edges:         make(map[string]map[edgeKey]bool),
		edgeOrder:     make(map[string][]edgeKey),
	}
}

// Repos wires the store into a Repositories aggregate
func (s *Store) Repos() *repository.Repositories {
	return &repository.Repositories{
		Tx:           s,
		User:         &UserRepo{s},
		Article:      &ArticleRepo{s},
		Topic:        &TopicRepo{s},
		Comment:      &CommentRepo{s},
		Message:      &MessageRepo{s},
		Notification: &NotificationRepo{s},
		Edge:         &EdgeRepo{s},
	}
}

// RunInTx implements repository.TxRunner as a pass-through
func (s *Store) RunInTx(ctx context.Context, fn func(q database.Querier) error) error {
	if s.Err != nil {
		return s.Err
	}
	return fn(nil)
}

// stamp returns strictly increasing timestamps so creation order is
// stable in listings ordered by created_at.
func (s *Store) stamp() time.Time {
	s.seq++
	return time.Unix(0, int64(s.seq)*int64(time.Millisecond))
}

// --- edge set primitives ---

func (s *Store) edgeExists(table, from, to string) bool {
	return s.edges[table][edgeKey{from, to}]
}

func (s *Store) edgeAdd(table, from, to string) {
	k := edgeKey{from, to}
	if s.edges[table] == nil {
		s.edges[table] = make(map[edgeKey]bool)
	}
	if s.edges[table][k] {
		return
	}
	s.edges[table][k] = true
	s.edgeOrder[table] = append(s.edgeOrder[table], k)
}

func (s *Store) edgeRemove(table, from, to string) {
	delete(s.edges[table], edgeKey{from, to})
}

func (s *Store) edgeOutgoing(table, from string) []string {
	var ids []string
	for _, k := range s.edgeOrder[table] {
		if k.from == from && s.edges[table][k] {
			ids = append(ids, k.to)
		}
	}
	return ids
}

func (s *Store) edgeIncoming(table, to string) []string {
	var ids []string
	for _, k := range s.edgeOrder[table] {
		if k.to == to && s.edges[table][k] {
			ids = append(ids, k.from)
		}
	}
	return ids
}

// dropEdges removes every edge touching id at either endpoint
func (s *Store) dropEdges(table, id string) {
	for k := range s.edges[table] {
		if k.from == id || k.to == id {
			delete(s.edges[table], k)
		}
	}
}

// --- cascade helpers, mirroring the schema's ON DELETE CASCADE ---

func (s *Store) deleteArticle(id string) {
	delete(s.Articles, id)
	for commentID, c := range s.Comments {
		if c.ArticleID == id {
			delete(s.Comments, commentID)
		}
	}
	for notifID, n := range s.Notifications {
		if n.ArticleID != nil && *n.ArticleID == id {
			delete(s.Notifications, notifID)
		}
	}
	s.dropEdges(repository.LikeEdge.Table, id)
	s.dropEdges(repository.BookmarkEdge.Table, id)
	s.dropEdges(repository.ArticleTopicEdge.Table, id)
}

func (s *Store) deleteCommentTree(id string) {
	delete(s.Comments, id)
	for childID, c := range s.Comments {
		if c.ParentID != nil && *c.ParentID == id {
			s.deleteCommentTree(childID)
		}
	}
}

func (s *Store) deleteUser(id string) {
	delete(s.Users, id)
	for articleID, a := range s.Articles {
		if a.AuthorID == id {
			s.deleteArticle(articleID)
		}
	}
	for commentID, c := range s.Comments {
		if c.UserID == id {
			s.deleteCommentTree(commentID)
		}
	}
	for messageID, m := range s.Messages {
		if m.SenderID == id || m.ReceiverID == id {
			delete(s.Messages, messageID)
		}
	}
	for notifID, n := range s.Notifications {
		if n.UserID == id || n.TriggeredByID == id {
			delete(s.Notifications, notifID)
		}
	}
	s.dropEdges(repository.FollowEdge.Table, id)
	s.dropEdges(repository.LikeEdge.Table, id)
	s.dropEdges(repository.BookmarkEdge.Table, id)
	s.dropEdges(repository.TopicInterestEdge.Table, id)
}

// trimPattern strips the SQL wildcards the services wrap around terms
func trimPattern(pattern string) string {
	return strings.Trim(pattern, "%")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
