package ports

import (
	"context"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type SignupInput struct {
	Email    string
	Password string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Authenticate resolves a raw Authorization header value to a user.
	Authenticate(ctx context.Context, authorization string) (*domain.User, error)
}
