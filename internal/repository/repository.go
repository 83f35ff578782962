package repository

import (
	"context"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
)

// TxRunner runs a function inside a single transaction scope. The
// database.DB wrapper implements it; tests substitute a pass-through.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q database.Querier) error) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Exists(ctx context.Context, q database.Querier, id string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error
	SetLastActive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error)
	SearchByUsername(ctx context.Context, pattern string) ([]*models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, q database.Querier, article *models.Article) error
	Update(ctx context.Context, q database.Querier, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Exists(ctx context.Context, q database.Querier, id string) (bool, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error)
	ListBookmarked(ctx context.Context, userID string) ([]*models.Article, error)
	Feed(ctx context.Context, userID string) ([]*models.Article, error)
	SearchPublished(ctx context.Context, pattern string) ([]*models.Article, error)
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	Create(ctx context.Context, q database.Querier, topic *models.Topic) error
	GetByID(ctx context.Context, id string) (*models.Topic, error)
	// GetByTitleFold looks a topic up by case-insensitive title match.
	GetByTitleFold(ctx context.Context, q database.Querier, title string) (*models.Topic, error)
	List(ctx context.Context) ([]*models.Topic, error)
	ListForArticle(ctx context.Context, articleID string) ([]*models.Topic, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Topic, error)
	Search(ctx context.Context, pattern string) ([]*models.Topic, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, q database.Querier, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
}

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListForUser(ctx context.Context, userID string) ([]*models.Message, error)
	Conversation(ctx context.Context, userID, otherID string) ([]*models.Message, error)
	MarkConversationRead(ctx context.Context, senderID, receiverID string) error
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, q database.Querier, n *models.Notification) error
	ListForUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// EdgeRepository manages the directed-edge sets behind the toggle
// relations (follow, like, bookmark, topic interest, article topics).
// Each relation is one underlying edge set; the two navigable views
// are the Outgoing and Incoming queries over it, so symmetry holds by
// construction.
type EdgeRepository interface {
	Exists(ctx context.Context, q database.Querier, e Edge, from, to string) (bool, error)
	Add(ctx context.Context, q database.Querier, e Edge, from, to string) error
	Remove(ctx context.Context, q database.Querier, e Edge, from, to string) error
	RemoveAllFrom(ctx context.Context, q database.Querier, e Edge, from string) error
	Outgoing(ctx context.Context, e Edge, from string) ([]string, error)
	Incoming(ctx context.Context, e Edge, to string) ([]string, error)
	CountOutgoing(ctx context.Context, e Edge, from string) (int, error)
	CountIncoming(ctx context.Context, e Edge, to string) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Tx TxRunner
	// Q is the plain query handle for single reads that need no
	// transaction scope.
	Q            database.Querier
	User         UserRepository
	Article      ArticleRepository
	Topic        TopicRepository
	Comment      CommentRepository
	Message      MessageRepository
	Notification NotificationRepository
	Edge         EdgeRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Tx:           db,
		Q:            db,
		User:         NewUserRepo(db),
		Article:      NewArticleRepo(db),
		Topic:        NewTopicRepo(db),
		Comment:      NewCommentRepo(db),
		Message:      NewMessageRepo(db),
		Notification: NewNotificationRepo(db),
		Edge:         NewEdgeRepo(db),
	}
}
