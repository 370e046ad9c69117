package ports

import (
	"context"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
