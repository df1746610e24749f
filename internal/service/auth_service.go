package service

import (
	"context"
	"log/slog"

	"github.com/nestlist/nestlist/internal/auth"
	"github.com/nestlist/nestlist/internal/models"
)

// AuthService handles registration, login and session lifecycle.
type AuthService struct {
	authenticator auth.Authenticator
	sessions      *auth.SessionManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, sessions *auth.SessionManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
	}
}

// Register creates a new user account.
// Returns auth.ErrUsernameExists if the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Register(ctx, username, password)
	if err != nil {
		s.logger.Warn("Registration failed", "username", username, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates a user and returns a session token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Sessions exposes the session manager for cookie handling in the web layer.
func (s *AuthService) Sessions() *auth.SessionManager {
	return s.sessions
}
