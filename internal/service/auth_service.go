package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ibimina/chatter-api/internal/auth"
	"github.com/ibimina/chatter-api/internal/config"
	"github.com/ibimina/chatter-api/internal/models"
	"github.com/ibimina/chatter-api/internal/repository"
	"github.com/ibimina/chatter-api/internal/validation"
	"github.com/rs/zerolog"
)

// authService implements AuthService
type authService struct {
	repos  *repository.Repositories
	tokens *auth.TokenIssuer
	cost   int
	log    zerolog.Logger
}

func newAuthService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) AuthService {
	return &authService{
		repos:  repos,
		tokens: auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		cost:   cfg.Auth.BcryptCost,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// Register creates an account with a generated username and returns a
// bearer token for it. A taken email is a Conflict; anything else that
// goes wrong past that check surfaces as-is and is reported by the
// handler as an internal failure.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthUser, error) {
	if errs := validation.ValidateRegistration(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, errs[0].Message)
	}

	taken, err := s.repos.User.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := auth.HashPassword(req.Password, s.cost)
	if err != nil {
		return nil, err
	}

	username, err := auth.GenerateUsername(ctx, s.repos.User)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := s.repos.User.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", username).Msg("User registered")

	return &models.AuthUser{
		AccessToken: token,
		TokenType:   "bearer",
		ID:          created.ID,
		Email:       created.Email,
		Username:    created.Username,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// Login exchanges email and password for a bearer token. Unknown email
// and wrong password both come back as PermissionDenied so the two are
// indistinguishable to a caller.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthUser, error) {
	user, err := s.repos.User.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrPermissionDenied)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthUser{
		AccessToken: token,
		TokenType:   "bearer",
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		CreatedAt:   user.CreatedAt,
	}, nil
}
