package services

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	defaultCategory  = "general"
)

type thoughtService struct {
	repo ports.ThoughtRepository
}

func NewThoughtService(repo ports.ThoughtRepository) ports.ThoughtService {
	return &thoughtService{
		repo: repo,
	}
}

func (s *thoughtService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateThoughtInput) (*domain.Thought, error) {
	if err := validateMessage(input.Message); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = defaultCategory
	}

	thought := &domain.Thought{
		ID:        uuid.New(),
		Message:   input.Message,
		Hearts:    0,
		Category:  category,
		CreatedAt: time.Now(),
		UserID:    userID,
	}

	if err := s.repo.Insert(ctx, thought); err != nil {
		return nil, err
	}

	return thought, nil
}

func (s *thoughtService) GetThought(ctx context.Context, id string) (*domain.Thought, error) {
	thoughtID, err := parseThoughtID(id)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, thoughtID)
}

func (s *thoughtService) ListThoughts(ctx context.Context, input ports.ListThoughtsInput) (*ports.ThoughtPage, error) {
	filter := ports.ThoughtFilter{Category: input.Category}

	if input.MinHearts != "" {
		minHearts, err := strconv.ParseFloat(input.MinHearts, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: minHearts must be a number", domain.ErrInvalidQuery)
		}
		filter.MinHearts = &minHearts
	}

	sortField := "created_at"
	if input.Sort == "hearts" {
		sortField = "hearts"
	}
	ascending := input.Order == "asc"

	page := 1
	if v, err := strconv.Atoi(input.Page); err == nil {
		page = v
	}
	if page < 1 {
		page = 1
	}

	// 0 means unset and falls back to the default, as does an unparseable
	// value; anything else is clamped to [1,100].
	limit := defaultPageLimit
	if v, err := strconv.Atoi(input.Limit); err == nil && v != 0 {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count thoughts: %w", err)
	}

	thoughts, err := s.repo.List(ctx, ports.ThoughtQuery{
		Filter:    filter,
		SortField: sortField,
		Ascending: ascending,
		Skip:      (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %w", err)
	}
	if thoughts == nil {
		thoughts = []*domain.Thought{}
	}

	return &ports.ThoughtPage{
		Thoughts:   thoughts,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		Total:      total,
	}, nil
}

func (s *thoughtService) Update(ctx context.Context, userID uuid.UUID, id string, input ports.UpdateThoughtInput) (*domain.Thought, error) {
	if err := validateMessage(input.Message); err != nil {
		return nil, err
	}

	thoughtID, err := parseThoughtID(id)
	if err != nil {
		return nil, err
	}

	thought, err := s.repo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, err
	}
	if thought.UserID != userID {
		return nil, domain.ErrForbidden
	}

	thought.Message = input.Message
	if input.Category != "" {
		thought.Category = input.Category
	}

	if err := s.repo.Update(ctx, thought); err != nil {
		return nil, err
	}

	return thought, nil
}

func (s *thoughtService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	thoughtID, err := parseThoughtID(id)
	if err != nil {
		return err
	}

	thought, err := s.repo.GetByID(ctx, thoughtID)
	if err != nil {
		return err
	}
	if thought.UserID != userID {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, thoughtID)
}

func (s *thoughtService) Like(ctx context.Context, id string) (*domain.Thought, error) {
	thoughtID, err := parseThoughtID(id)
	if err != nil {
		return nil, err
	}

	// The increment happens in a single statement in the repository, so
	// concurrent likes on the same thought never lose updates.
	return s.repo.IncrementHearts(ctx, thoughtID)
}

func parseThoughtID(id string) (uuid.UUID, error) {
	thoughtID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidThoughtID
	}
	return thoughtID, nil
}

func validateMessage(message string) error {
	length := utf8.RuneCountInString(message)
	if length < domain.MessageMinLength || length > domain.MessageMaxLength {
		return fmt.Errorf("%w: message is required and must be between %d and %d characters",
			domain.ErrValidation, domain.MessageMinLength, domain.MessageMaxLength)
	}
	return nil
}
