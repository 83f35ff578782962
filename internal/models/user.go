package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    *string    `json:"first_name,omitempty" db:"first_name"`
	LastName     *string    `json:"last_name,omitempty" db:"last_name"`
	Bio          *string    `json:"bio,omitempty" db:"bio"`
	Location     *string    `json:"location,omitempty" db:"location"`
	ProfileImage *string    `json:"profile_image,omitempty" db:"profile_image"`
	FacebookURL  *string    `json:"facebook_url,omitempty" db:"facebook_url"`
	TwitterURL   *string    `json:"twitter_url,omitempty" db:"twitter_url"`
	InstagramURL *string    `json:"instagram_url,omitempty" db:"instagram_url"`
	WebsiteURL   *string    `json:"website_url,omitempty" db:"website_url"`
	YoutubeURL   *string    `json:"youtube_url,omitempty" db:"youtube_url"`
	LinkedinURL  *string    `json:"linkedin_url,omitempty" db:"linkedin_url"`
	GithubURL    *string    `json:"github_url,omitempty" db:"github_url"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty" db:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the body of POST /users
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the registration/login response: a bearer token plus
// a summary of the account it authenticates.
type AuthUser struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileUpdate carries a partial profile update. Only non-nil fields
// are applied.
type ProfileUpdate struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	FacebookURL  *string `json:"facebook_url,omitempty"`
	TwitterURL   *string `json:"twitter_url,omitempty"`
	InstagramURL *string `json:"instagram_url,omitempty"`
	WebsiteURL   *string `json:"website_url,omitempty"`
	YoutubeURL   *string `json:"youtube_url,omitempty"`
	LinkedinURL  *string `json:"linkedin_url,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
}

// Dashboard aggregates a user's profile with their interests, articles
// and current feed.
type Dashboard struct {
	User          *User      `json:"user"`
	Topics        []*Topic   `json:"topics"`
	Articles      []*Article `json:"articles"`
	Feeds         []*Article `json:"feeds"`
	ArticlesCount int        `json:"articles_count"`
}

// FollowStatus describes the follow relation between the viewer and
// another user. Counts are derived from edge-set cardinality.
type FollowStatus struct {
	IsFollowing    bool `json:"is_following"`
	FollowerCount  int  `json:"follower_count"`
	FollowingCount int  `json:"following_count"`
}
