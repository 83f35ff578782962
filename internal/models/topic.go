package models

import (
	"time"
)

// Topic represents a free-text label articles and user interests hang off.
// Titles are unique; uniqueness is case-insensitive and enforced by
// lookup rather than a collation constraint, so the stored title keeps
// the casing of whoever created it first.
type Topic struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TopicInput is the body of POST /topics
type TopicInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// InterestsInput is the body of PUT /users/add_topics
type InterestsInput struct {
	Topics []string `json:"topics"`
}
