package ports

import (
	"context"

	"github.com/bizhub/business-backend/internal/core/domain"
)

// UserService covers the admin-gated user CRUD surface.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, username, email, password, role string) (*domain.User, error)
}
