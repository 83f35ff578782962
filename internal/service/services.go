package service

import (
	"context"

	"github.com/ibimina/chatter-api/internal/config"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthUser, error)
}

// UserService defines the interface for profile operations
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Dashboard(ctx context.Context, userID string) (*models.Dashboard, error)
	UpdateProfile(ctx context.Context, userID string, upd *models.ProfileUpdate) (*models.User, error)
	Delete(ctx context.Context, userID string) error
	UsernameTaken(ctx context.Context, username string) (bool, error)
	AddInterests(ctx context.Context, userID string, titles []string) ([]*models.Topic, error)
	SetLastActive(ctx context.Context, userID string) error
}

// ArticleService defines the interface for article CRUD and search
type ArticleService interface {
	Create(ctx context.Context, authorID string, in *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, actorID, articleID string, in *models.ArticleInput) (*models.Article, error)
	Get(ctx context.Context, articleID string) (*models.Article, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error)
	ListBookmarked(ctx context.Context, userID string) ([]*models.Article, error)
	Delete(ctx context.Context, actorID, articleID string) error
	Search(ctx context.Context, term string) (*models.SearchResult, error)
}

// EngagementService governs the toggle relations (like, bookmark,
// follow, topic interest), the follow-graph views and the feed.
type EngagementService interface {
	ToggleLike(ctx context.Context, actorID, articleID string) (bool, error)
	ToggleBookmark(ctx context.Context, actorID, articleID string) (bool, error)
	ToggleFollow(ctx context.Context, actorID, targetID string) (bool, error)
	Unfollow(ctx context.Context, actorID, targetID string) error
	ToggleTopicInterest(ctx context.Context, actorID, topicID string) (bool, *models.Topic, error)
	Followers(ctx context.Context, userID string) ([]*models.User, error)
	Following(ctx context.Context, userID string) ([]*models.User, error)
	FollowStatus(ctx context.Context, actorID, targetID string) (*models.FollowStatus, error)
	Suggestions(ctx context.Context, actorID string, limit int) ([]*models.User, error)
	ComposeFeed(ctx context.Context, userID string) ([]*models.Article, error)
}

// TopicService defines the interface for topic CRUD
type TopicService interface {
	List(ctx context.Context) ([]*models.Topic, error)
	GetByTitle(ctx context.Context, title string) (*models.Topic, error)
	Create(ctx context.Context, in *models.TopicInput) (*models.Topic, error)
}

// CommentService defines the interface for comment threading
type CommentService interface {
	Add(ctx context.Context, articleID, userID, content string, parentID *string) (*models.Comment, error)
	ListTree(ctx context.Context, articleID string) ([]*models.Comment, error)
}

// MessageService defines the interface for direct messaging
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID string, in *models.MessageInput) (*models.Message, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Message, error)
	Conversation(ctx context.Context, userID, otherID string) ([]*models.Message, error)
	MarkConversationRead(ctx context.Context, receiverID, senderID string) error
}

// NotificationService defines the interface for notification delivery
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Auth         AuthService
	User         UserService
	Article      ArticleService
	Engagement   EngagementService
	Topic        TopicService
	Comment      CommentService
	Message      MessageService
	Notification NotificationService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:         newAuthService(repos, cfg, log),
		User:         newUserService(repos, log),
		Article:      newArticleService(repos, log),
		Engagement:   newEngagementService(repos, log),
		Topic:        newTopicService(repos, log),
		Comment:      newCommentService(repos, log),
		Message:      newMessageService(repos, log),
		Notification: newNotificationService(repos, log),
	}
}
