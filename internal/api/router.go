package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibimina/chatter-api/internal/auth"
	"github.com/ibimina/chatter-api/internal/config"
	"github.com/ibimina/chatter-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authed := authMiddleware(tokens, services.User, log)

	// Handlers
	authHandler := NewAuthHandler(services, log)
	userHandler := NewUserHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	topicHandler := NewTopicHandler(services, log)
	followHandler := NewFollowHandler(services, log)
	bookmarkHandler := NewBookmarkHandler(services, log)
	messageHandler := NewMessageHandler(services, log)
	notificationHandler := NewNotificationHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	router.POST("/auth/login", authHandler.Login)

	users := router.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.GET("/check_username/:username", userHandler.CheckUsername)
		users.GET("/:username", userHandler.GetByUsername)

		users.GET("", authed, userHandler.List)
		users.PUT("", authed, userHandler.UpdateProfile)
		users.DELETE("", authed, userHandler.Delete)
		users.PUT("/add_topics", authed, userHandler.AddInterests)
		users.GET("/feeds", authed, userHandler.Feeds)
		users.GET("/dashboard", authed, userHandler.Dashboard)
	}

	articles := router.Group("/articles")
	{
		articles.GET("/:article_id", articleHandler.Get)
		articles.GET("/user/:user_id", articleHandler.ListByAuthor)

		articles.POST("", authed, articleHandler.Create)
		articles.PATCH("/:article_id", authed, articleHandler.Update)
		articles.DELETE("/:article_id", authed, articleHandler.Delete)
		articles.GET("/search", authed, articleHandler.Search)
		articles.POST("/:article_id/like", authed, articleHandler.ToggleLike)
		articles.POST("/:article_id/comment", authed, articleHandler.Comment)
		articles.GET("/:article_id/comments", articleHandler.Comments)
		articles.POST("/:article_id/comment/:comment_id/reply", authed, articleHandler.Reply)
	}

	bookmarks := router.Group("/bookmarks", authed)
	{
		bookmarks.GET("", bookmarkHandler.List)
		bookmarks.POST("/:article_id", bookmarkHandler.Toggle)
	}

	topics := router.Group("/topics")
	{
		topics.GET("", topicHandler.List)
		topics.GET("/by-title/:title", topicHandler.GetByTitle)

		topics.POST("", authed, topicHandler.Create)
		topics.POST("/follow/:topic_id", authed, topicHandler.ToggleInterest)
	}

	follow := router.Group("/follow")
	{
		follow.GET("/users/:user_id/followers", followHandler.Followers)
		follow.GET("/users/:user_id/following", followHandler.Following)

		follow.POST("/users/:user_id", authed, followHandler.Toggle)
		follow.DELETE("/users/:user_id", authed, followHandler.Unfollow)
		follow.GET("/users/:user_id/status", authed, followHandler.Status)
		follow.GET("/me/followers", authed, followHandler.MyFollowers)
		follow.GET("/me/following", authed, followHandler.MyFollowing)
		follow.GET("/suggestions", authed, followHandler.Suggestions)
	}

	messages := router.Group("/messages", authed)
	{
		messages.GET("", messageHandler.List)
		messages.GET("/:user_id", messageHandler.Conversation)
		messages.POST("/:user_id", messageHandler.Send)
		messages.POST("/:user_id/read", messageHandler.MarkRead)
	}

	notifications := router.Group("/notifications", authed)
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread_count", notificationHandler.UnreadCount)
		notifications.POST("/:notification_id/read", notificationHandler.MarkRead)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "chatter-api",
	})
}
