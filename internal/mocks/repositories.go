package mocks

import (
	"context"
	"strings"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
)

// UserRepo is a mock implementation of repository.UserRepository
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.Users[user.ID] = user
	r.s.userOrder = append(r.s.userOrder, user.ID)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.Users[id], nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, err := r.GetByUsername(ctx, username)
	return u != nil, err
}

func (r *UserRepo) Exists(ctx context.Context, q database.Querier, id string) (bool, error) {
	if r.s.Err != nil {
		return false, r.s.Err
	}
	_, ok := r.s.Users[id]
	return ok, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var users []*models.User
	for _, id := range r.s.userOrder {
		if u, ok := r.s.Users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepo) ListByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var users []*models.User
	for _, id := range ids {
		if u, ok := r.s.Users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	user, ok := r.s.Users[id]
	if !ok {
		return nil
	}
	apply := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	apply(&user.FirstName, upd.FirstName)
	apply(&user.LastName, upd.LastName)
	apply(&user.Bio, upd.Bio)
	apply(&user.Location, upd.Location)
	apply(&user.ProfileImage, upd.ProfileImage)
	apply(&user.FacebookURL, upd.FacebookURL)
	apply(&user.TwitterURL, upd.TwitterURL)
	apply(&user.InstagramURL, upd.InstagramURL)
	apply(&user.WebsiteURL, upd.WebsiteURL)
	apply(&user.YoutubeURL, upd.YoutubeURL)
	apply(&user.LinkedinURL, upd.LinkedinURL)
	apply(&user.GithubURL, upd.GithubURL)
	user.UpdatedAt = r.s.stamp()
	return nil
}

func (r *UserRepo) SetLastActive(ctx context.Context, id string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	if user, ok := r.s.Users[id]; ok {
		now := r.s.stamp()
		user.LastActiveAt = &now
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.deleteUser(id)
	return nil
}

func (r *UserRepo) Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	following := make(map[string]bool)
	for _, id := range r.s.edgeOutgoing(repository.FollowEdge.Table, userID) {
		following[id] = true
	}
	var users []*models.User
	for _, id := range r.s.userOrder {
		u, ok := r.s.Users[id]
		if !ok || id == userID || following[id] {
			continue
		}
		users = append(users, u)
		if len(users) == limit {
			break
		}
	}
	return users, nil
}

func (r *UserRepo) SearchByUsername(ctx context.Context, pattern string) ([]*models.User, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	term := trimPattern(pattern)
	var users []*models.User
	for _, id := range r.s.userOrder {
		if u, ok := r.s.Users[id]; ok && containsFold(u.Username, term) {
			users = append(users, u)
		}
	}
	return users, nil
}

// ArticleRepo is a mock implementation of repository.ArticleRepository
type ArticleRepo struct {
	s *Store
}

func (r *ArticleRepo) Create(ctx context.Context, q database.Querier, article *models.Article) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	article.CreatedAt = now
	article.UpdatedAt = now
	r.s.Articles[article.ID] = article
	r.s.articleOrder = append(r.s.articleOrder, article.ID)
	return nil
}

func (r *ArticleRepo) Update(ctx context.Context, q database.Querier, article *models.Article) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	article.UpdatedAt = r.s.stamp()
	r.s.Articles[article.ID] = article
	return nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.Articles[id], nil
}

func (r *ArticleRepo) Exists(ctx context.Context, q database.Querier, id string) (bool, error) {
	if r.s.Err != nil {
		return false, r.s.Err
	}
	_, ok := r.s.Articles[id]
	return ok, nil
}

func (r *ArticleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var articles []*models.Article
	for _, id := range r.s.articleOrder {
		if a, ok := r.s.Articles[id]; ok && a.AuthorID == authorID {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func (r *ArticleRepo) ListBookmarked(ctx context.Context, userID string) ([]*models.Article, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var articles []*models.Article
	for _, id := range r.s.edgeOutgoing(repository.BookmarkEdge.Table, userID) {
		if a, ok := r.s.Articles[id]; ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

// Feed returns published articles tagged with any topic the user
// follows, each article once.
func (r *ArticleRepo) Feed(ctx context.Context, userID string) ([]*models.Article, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	interests := make(map[string]bool)
	for _, topicID := range r.s.edgeOutgoing(repository.TopicInterestEdge.Table, userID) {
		interests[topicID] = true
	}
	var articles []*models.Article
	for _, id := range r.s.articleOrder {
		a, ok := r.s.Articles[id]
		if !ok || !a.IsPublished {
			continue
		}
		for _, topicID := range r.s.edgeOutgoing(repository.ArticleTopicEdge.Table, id) {
			if interests[topicID] {
				articles = append(articles, a)
				break
			}
		}
	}
	return articles, nil
}

func (r *ArticleRepo) SearchPublished(ctx context.Context, pattern string) ([]*models.Article, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	term := trimPattern(pattern)
	var articles []*models.Article
	for _, id := range r.s.articleOrder {
		a, ok := r.s.Articles[id]
		if !ok || !a.IsPublished {
			continue
		}
		if containsFold(a.Title, term) || (a.Subtitle != nil && containsFold(*a.Subtitle, term)) {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func (r *ArticleRepo) IncrementViews(ctx context.Context, id string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	if a, ok := r.s.Articles[id]; ok {
		a.ViewsCount++
	}
	return nil
}

func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.deleteArticle(id)
	return nil
}

// TopicRepo is a mock implementation of repository.TopicRepository
type TopicRepo struct {
	s *Store
}

func (r *TopicRepo) Create(ctx context.Context, q database.Querier, topic *models.Topic) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	topic.CreatedAt = now
	topic.UpdatedAt = now
	r.s.Topics[topic.ID] = topic
	r.s.topicOrder = append(r.s.topicOrder, topic.ID)
	return nil
}

func (r *TopicRepo) GetByID(ctx context.Context, id string) (*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.Topics[id], nil
}

func (r *TopicRepo) GetByTitleFold(ctx context.Context, q database.Querier, title string) (*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, id := range r.s.topicOrder {
		if t, ok := r.s.Topics[id]; ok && strings.EqualFold(t.Title, title) {
			return t, nil
		}
	}
	return nil, nil
}

func (r *TopicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var topics []*models.Topic
	for _, id := range r.s.topicOrder {
		if t, ok := r.s.Topics[id]; ok {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func (r *TopicRepo) ListForArticle(ctx context.Context, articleID string) ([]*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var topics []*models.Topic
	for _, id := range r.s.edgeOutgoing(repository.ArticleTopicEdge.Table, articleID) {
		if t, ok := r.s.Topics[id]; ok {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func (r *TopicRepo) ListForUser(ctx context.Context, userID string) ([]*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var topics []*models.Topic
	for _, id := range r.s.edgeOutgoing(repository.TopicInterestEdge.Table, userID) {
		if t, ok := r.s.Topics[id]; ok {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func (r *TopicRepo) Search(ctx context.Context, pattern string) ([]*models.Topic, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	term := trimPattern(pattern)
	var topics []*models.Topic
	for _, id := range r.s.topicOrder {
		if t, ok := r.s.Topics[id]; ok && containsFold(t.Title, term) {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

// CommentRepo is a mock implementation of repository.CommentRepository
type CommentRepo struct {
	s *Store
}

func (r *CommentRepo) Create(ctx context.Context, q database.Querier, comment *models.Comment) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	r.s.Comments[comment.ID] = comment
	r.s.commentOrder = append(r.s.commentOrder, comment.ID)
	return nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.Comments[id], nil
}

func (r *CommentRepo) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var comments []*models.Comment
	for _, id := range r.s.commentOrder {
		if c, ok := r.s.Comments[id]; ok && c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// MessageRepo is a mock implementation of repository.MessageRepository
type MessageRepo struct {
	s *Store
}

func (r *MessageRepo) Create(ctx context.Context, message *models.Message) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	message.CreatedAt = now
	message.UpdatedAt = now
	r.s.Messages[message.ID] = message
	r.s.messageOrder = append(r.s.messageOrder, message.ID)
	return nil
}

func (r *MessageRepo) ListForUser(ctx context.Context, userID string) ([]*models.Message, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var messages []*models.Message
	for _, id := range r.s.messageOrder {
		if m, ok := r.s.Messages[id]; ok && (m.SenderID == userID || m.ReceiverID == userID) {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (r *MessageRepo) Conversation(ctx context.Context, userID, otherID string) ([]*models.Message, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var messages []*models.Message
	for _, id := range r.s.messageOrder {
		m, ok := r.s.Messages[id]
		if !ok {
			continue
		}
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (r *MessageRepo) MarkConversationRead(ctx context.Context, senderID, receiverID string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, m := range r.s.Messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			now := r.s.stamp()
			m.IsRead = true
			m.ReadAt = &now
		}
	}
	return nil
}

// NotificationRepo is a mock implementation of repository.NotificationRepository
type NotificationRepo struct {
	s *Store
}

func (r *NotificationRepo) Create(ctx context.Context, q database.Querier, n *models.Notification) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	now := r.s.stamp()
	n.CreatedAt = now
	n.UpdatedAt = now
	r.s.Notifications[n.ID] = n
	r.s.notifOrder = append(r.s.notifOrder, n.ID)
	return nil
}

func (r *NotificationRepo) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var notifications []*models.Notification
	for _, id := range r.s.notifOrder {
		if n, ok := r.s.Notifications[id]; ok && n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	if r.s.Err != nil {
		return false, r.s.Err
	}
	n, ok := r.s.Notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.IsRead = true
	n.UpdatedAt = r.s.stamp()
	return true, nil
}

func (r *NotificationRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	count := 0
	for _, n := range r.s.Notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// EdgeRepo is a mock implementation of repository.EdgeRepository
type EdgeRepo struct {
	s *Store
}

func (r *EdgeRepo) Exists(ctx context.Context, q database.Querier, e repository.Edge, from, to string) (bool, error) {
	if r.s.Err != nil {
		return false, r.s.Err
	}
	return r.s.edgeExists(e.Table, from, to), nil
}

func (r *EdgeRepo) Add(ctx context.Context, q database.Querier, e repository.Edge, from, to string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.edgeAdd(e.Table, from, to)
	return nil
}

func (r *EdgeRepo) Remove(ctx context.Context, q database.Querier, e repository.Edge, from, to string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.edgeRemove(e.Table, from, to)
	return nil
}

func (r *EdgeRepo) RemoveAllFrom(ctx context.Context, q database.Querier, e repository.Edge, from string) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, to := range r.s.edgeOutgoing(e.Table, from) {
		r.s.edgeRemove(e.Table, from, to)
	}
	return nil
}

func (r *EdgeRepo) Outgoing(ctx context.Context, e repository.Edge, from string) ([]string, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.edgeOutgoing(e.Table, from), nil
}

func (r *EdgeRepo) Incoming(ctx context.Context, e repository.Edge, to string) ([]string, error) {
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.edgeIncoming(e.Table, to), nil
}

func (r *EdgeRepo) CountOutgoing(ctx context.Context, e repository.Edge, from string) (int, error) {
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return len(r.s.edgeOutgoing(e.Table, from)), nil
}

func (r *EdgeRepo) CountIncoming(ctx context.Context, e repository.Edge, to string) (int, error) {
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return len(r.s.edgeIncoming(e.Table, to)), nil
}
