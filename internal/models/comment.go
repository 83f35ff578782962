package models

import (
	"time"
)

// Comment represents a comment on an article, optionally a reply to
// another comment on the same article. Replies form an unbounded tree;
// children are looked up through the parent index, not embedded.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"article_id" db:"article_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ParentID  *string   `json:"parent_id,omitempty" db:"parent_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Replies []*Comment `json:"replies,omitempty" db:"-"`
}

// CommentInput is the body of comment and reply creation
type CommentInput struct {
	Content string `json:"content"`
}
