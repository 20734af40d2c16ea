package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionManager issues and revokes bearer tokens for admin sessions.
type SessionManager interface {
	Create(ctx context.Context, adminID int64) (string, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	admins   repository.AdminRepository
	sessions SessionManager
	logger   *zap.Logger
}

func NewAuthService(admins repository.AdminRepository, sessions SessionManager, logger *zap.Logger) (*AuthService, error) {
	if admins == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthService{admins: admins, sessions: sessions, logger: logger}, nil
}

type LoginResult struct {
	Token string
	Admin *domain.Admin
}

// Login verifies the credentials and opens a session. A missing account and
// a bad password both map to ErrUnauthorized so the response does not reveal
// which one it was.
func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := s.sessions.Create(ctx, admin.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("admin logged in", zap.Int64("adminId", admin.ID))
	return &LoginResult{Token: token, Admin: admin}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: token is required", domain.ErrValidation)
	}
	return s.sessions.Delete(ctx, token)
}

// EnsureBootstrapAdmin seeds the configured admin account at startup. It is
// a no-op when the email already exists or when no credentials are set.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email string, password string, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &domain.Admin{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.admins.CreateIfMissing(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	return nil
}
