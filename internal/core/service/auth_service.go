package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bizhub/business-backend/internal/core/auth"
	"github.com/bizhub/business-backend/internal/core/domain"
	"github.com/bizhub/business-backend/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	issuer *auth.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	return createUser(ctx, s.repo, username, email, password, role)
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password produce the same error so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// createUser is shared between self-registration and the admin create-user
// path so field validation and role defaulting cannot diverge.
func createUser(ctx context.Context, repo ports.UserRepository, username, email, password, role string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.NormalizeRole(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return repo.Create(ctx, user)
}
