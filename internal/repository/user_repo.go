package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ibimina/chatter-api/internal/database"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/lib/pq"
)

const userColumns = `id, email, username, password_hash, first_name, last_name, bio,
	location, profile_image, facebook_url, twitter_url, instagram_url, website_url,
	youtube_url, linkedin_url, github_url, is_active, last_active_at, created_at, updated_at`

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.IsActive,
		now, now,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail retrieves a user by email
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByUsername retrieves a user by username
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *userRepo) getBy(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", userColumns, column)
	user, err := scanUser(r.db.QueryRowContext(ctx, query, value))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EmailExists checks if a user with the given email exists
func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// UsernameExists checks if a user with the given username exists
func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// Exists checks if a user with the given ID exists
func (r *userRepo) Exists(ctx context.Context, q database.Querier, id string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// List retrieves all users
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userColumns)
	return r.queryUsers(ctx, query)
}

// ListByIDs retrieves the users with the given ids
func (r *userRepo) ListByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ANY($1)", userColumns)
	return r.queryUsers(ctx, query, pq.Array(ids))
}

// UpdateProfile applies a partial profile update. Only non-nil fields
// are written.
func (r *userRepo) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error {
	sets := []string{}
	args := []any{id}

	add := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("first_name", upd.FirstName)
	add("last_name", upd.LastName)
	add("bio", upd.Bio)
	add("location", upd.Location)
	add("profile_image", upd.ProfileImage)
	add("facebook_url", upd.FacebookURL)
	add("twitter_url", upd.TwitterURL)
	add("instagram_url", upd.InstagramURL)
	add("website_url", upd.WebsiteURL)
	add("youtube_url", upd.YoutubeURL)
	add("linkedin_url", upd.LinkedinURL)
	add("github_url", upd.GithubURL)

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1", strings.Join(sets, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// SetLastActive stamps the user's last activity time
func (r *userRepo) SetLastActive(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET last_active_at = NOW() WHERE id = $1", id)
	return err
}

// Delete removes a user. Authored articles, comments, messages,
// notifications and edge rows go with it via the schema's cascades.
func (r *userRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}

// Suggestions returns users the given user does not yet follow
func (r *userRepo) Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE id <> $1
		  AND id NOT IN (SELECT following_id FROM user_follows WHERE follower_id = $1)
		LIMIT $2
	`, userColumns)
	return r.queryUsers(ctx, query, userID, limit)
}

// SearchByUsername retrieves users whose username contains the pattern
func (r *userRepo) SearchByUsername(ctx context.Context, pattern string) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username ILIKE $1", userColumns)
	return r.queryUsers(ctx, query, pattern)
}

func (r *userRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Bio, &user.Location,
		&user.ProfileImage, &user.FacebookURL, &user.TwitterURL,
		&user.InstagramURL, &user.WebsiteURL, &user.YoutubeURL,
		&user.LinkedinURL, &user.GithubURL, &user.IsActive,
		&user.LastActiveAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
