package services

import (
	"context"
	"errors"
	"testing"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	getByTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	createFunc     func(ctx context.Context, user *domain.User) error
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.getByTokenFunc != nil {
		return m.getByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

// fakeHasher avoids bcrypt cost in unit tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, hash string) bool    { return hash == "hashed:"+plaintext }

func TestSignup(t *testing.T) {
	var created *domain.User
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *domain.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo, fakeHasher{})

	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "Ada@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "hashed:supersecret", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.ID)
	// 128 random bytes, hex-encoded
	assert.Len(t, user.AccessToken, 256)
	assert.Same(t, created, user)
}

func TestSignupTokensAreUnique(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *domain.User) error { return nil },
	}
	svc := NewAuthService(repo, fakeHasher{})

	first, err := svc.Signup(context.Background(), ports.SignupInput{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)
	second, err := svc.Signup(context.Background(), ports.SignupInput{Email: "b@example.com", Password: "password2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "supersecret"},
		{"missing password", "ada@example.com", ""},
		{"bad email format", "not-an-email", "supersecret"},
		{"bad email with spaces", "a b@example.com", "supersecret"},
		{"short password", "ada@example.com", "seven77"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				createFunc: func(ctx context.Context, user *domain.User) error {
					t.Fatal("create should not be called")
					return nil
				},
			}
			svc := NewAuthService(repo, fakeHasher{})

			_, err := svc.Signup(context.Background(), ports.SignupInput{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email}, nil
		},
		createFunc: func(ctx context.Context, user *domain.User) error {
			t.Fatal("create should not be called")
			return nil
		},
	}
	svc := NewAuthService(repo, fakeHasher{})

	_, err := svc.Signup(context.Background(), ports.SignupInput{Email: "taken@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	stored := &domain.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "hashed:supersecret",
		AccessToken:  "token",
	}
	repo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(repo, fakeHasher{})

	user, err := svc.Login(context.Background(), "Ada@Example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	stored := &domain.User{Email: "ada@example.com", PasswordHash: "hashed:supersecret"}
	repo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(repo, fakeHasher{})

	_, wrongPassword := svc.Login(context.Background(), "ada@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "supersecret")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidLogin)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidLogin)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthenticate(t *testing.T) {
	stored := &domain.User{ID: uuid.New(), AccessToken: "goodtoken"}
	repo := &mockUserRepository{
		getByTokenFunc: func(ctx context.Context, token string) (*domain.User, error) {
			if token == stored.AccessToken {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(repo, fakeHasher{})

	t.Run("valid token", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "Bearer goodtoken")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("token surrounded by whitespace", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "Bearer  goodtoken ")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "Basic goodtoken")
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "Bearer forged")
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
}
