package models

import (
	"time"
)

// Article represents a blog post authored by a user
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subtitle    *string   `json:"subtitle,omitempty" db:"subtitle"`
	Content     string    `json:"content" db:"content"`
	CoverImage  *string   `json:"cover_image,omitempty" db:"cover_image"`
	AuthorID    string    `json:"author_id" db:"author_id"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	ViewsCount  int       `json:"views_count" db:"views_count"`
	ReadingTime *int      `json:"reading_time,omitempty" db:"reading_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Populated on read, not stored on the row.
	Topics        []*Topic `json:"topics,omitempty" db:"-"`
	LikeCount     int      `json:"like_count" db:"-"`
	BookmarkCount int      `json:"bookmark_count" db:"-"`
}

// ArticleInput is the body of POST /articles and PATCH /articles/:id.
// Topics are free-text titles resolved case-insensitively; the stored
// topic set is fully replaced with the resolved list.
type ArticleInput struct {
	Title       string   `json:"title"`
	Subtitle    *string  `json:"subtitle,omitempty"`
	Content     string   `json:"content"`
	CoverImage  *string  `json:"cover_image,omitempty"`
	IsPublished bool     `json:"is_published"`
	ReadingTime *int     `json:"reading_time,omitempty"`
	Topics      []string `json:"topics"`
}

// SearchResult groups the matches of a global substring search.
type SearchResult struct {
	Articles []*Article `json:"articles"`
	Users    []*User    `json:"users"`
	Topics   []*Topic   `json:"topics"`
}
