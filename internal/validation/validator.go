package validation

import (
	"regexp"
	"strings"

	"github.com/ibimina/chatter-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlRegex   = regexp.MustCompile(`^https?://\S+$`)
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRegistration validates a registration request
func ValidateRegistration(req *models.RegisterRequest) []ValidationError {
	var errs []ValidationError

	if req.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format"})
	}

	if req.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < MinPasswordLength {
		errs = append(errs, ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	return errs
}

// ValidateProfileUpdate validates the URL-shaped fields of a partial
// profile update. Nil fields are skipped.
func ValidateProfileUpdate(upd *models.ProfileUpdate) []ValidationError {
	var errs []ValidationError

	urls := map[string]*string{
		"facebook_url":  upd.FacebookURL,
		"twitter_url":   upd.TwitterURL,
		"instagram_url": upd.InstagramURL,
		"website_url":   upd.WebsiteURL,
		"youtube_url":   upd.YoutubeURL,
		"linkedin_url":  upd.LinkedinURL,
		"github_url":    upd.GithubURL,
	}
	for field, value := range urls {
		if value != nil && *value != "" && !urlRegex.MatchString(*value) {
			errs = append(errs, ValidationError{Field: field, Message: "must be an http(s) URL"})
		}
	}

	return errs
}

// ValidateArticleInput validates article creation/update input
func ValidateArticleInput(in *models.ArticleInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content is required"})
	}
	if in.ReadingTime != nil && *in.ReadingTime < 0 {
		errs = append(errs, ValidationError{Field: "reading_time", Message: "reading_time must not be negative"})
	}

	return errs
}

// ValidateTopicInput validates explicit topic creation
func ValidateTopicInput(in *models.TopicInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}

	return errs
}

// ValidateCommentInput validates comment and reply creation
func ValidateCommentInput(in *models.CommentInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content is required"})
	}

	return errs
}
