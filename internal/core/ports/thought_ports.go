package ports

import (
	"context"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/google/uuid"
)

type ThoughtFilter struct {
	MinHearts *float64
	Category  string
}

type ThoughtQuery struct {
	Filter    ThoughtFilter
	SortField string
	Ascending bool
	Skip      int
	Limit     int
}

type ThoughtRepository interface {
	Insert(ctx context.Context, thought *domain.Thought) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error)
	List(ctx context.Context, query ThoughtQuery) ([]*domain.Thought, error)
	Count(ctx context.Context, filter ThoughtFilter) (int, error)
	Update(ctx context.Context, thought *domain.Thought) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementHearts(ctx context.Context, id uuid.UUID) (*domain.Thought, error)
}

type CreateThoughtInput struct {
	Message  string
	Category string
}

type UpdateThoughtInput struct {
	Message  string
	Category string
}

// ListThoughtsInput carries the raw query parameters; parsing, defaulting
// and clamping happen in the service.
type ListThoughtsInput struct {
	MinHearts string
	Category  string
	Sort      string
	Order     string
	Page      string
	Limit     string
}

type ThoughtPage struct {
	Thoughts   []*domain.Thought `json:"thoughts"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	Total      int               `json:"total"`
}

type ThoughtService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateThoughtInput) (*domain.Thought, error)
	GetThought(ctx context.Context, id string) (*domain.Thought, error)
	ListThoughts(ctx context.Context, input ListThoughtsInput) (*ThoughtPage, error)
	Update(ctx context.Context, userID uuid.UUID, id string, input UpdateThoughtInput) (*domain.Thought, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	Like(ctx context.Context, id string) (*domain.Thought, error)
}
