package ports

import (
	"context"

	"github.com/bizhub/business-backend/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Uniqueness of
// username and email is enforced by the store, not by callers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}
