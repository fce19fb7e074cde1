package service

import (
	"context"

	"github.com/bizhub/business-backend/internal/core/domain"
	"github.com/bizhub/business-backend/internal/core/ports"
)

// UserService implements the admin-gated user CRUD operations.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Create(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	return createUser(ctx, s.repo, username, email, password, role)
}
