package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/artakjato/happy-thoughts-api/internal/core/domain"
	"github.com/artakjato/happy-thoughts-api/internal/core/ports"
	"github.com/google/uuid"
)

type thoughtRepository struct {
	db *sql.DB
}

func NewThoughtRepository(db *sql.DB) ports.ThoughtRepository {
	return &thoughtRepository{
		db: db,
	}
}

func (r *thoughtRepository) Insert(ctx context.Context, thought *domain.Thought) error {
	query := `
		INSERT INTO thoughts (id, message, hearts, category, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		thought.ID, thought.Message, thought.Hearts, thought.Category, thought.CreatedAt, thought.UserID)
	if err != nil {
		return fmt.Errorf("failed to insert thought: %w", err)
	}
	return nil
}

func (r *thoughtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Thought, error) {
	query := `
		SELECT id, message, hearts, category, created_at, user_id
		FROM thoughts
		WHERE id = $1
	`
	var thought domain.Thought
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&thought.ID, &thought.Message, &thought.Hearts, &thought.Category, &thought.CreatedAt, &thought.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThoughtNotFound
		}
		return nil, fmt.Errorf("failed to get thought: %w", err)
	}
	return &thought, nil
}

func (r *thoughtRepository) List(ctx context.Context, q ports.ThoughtQuery) ([]*domain.Thought, error) {
	where, args := buildFilter(q.Filter)

	// Sort column comes from a fixed whitelist, never from user input.
	sortColumn := "created_at"
	if q.SortField == "hearts" {
		sortColumn = "hearts"
	}
	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, message, hearts, category, created_at, user_id
		FROM thoughts
		%s
		ORDER BY %s %s, id %s
		LIMIT $%d OFFSET $%d
	`, where, sortColumn, direction, direction, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []*domain.Thought
	for rows.Next() {
		var thought domain.Thought
		if err := rows.Scan(&thought.ID, &thought.Message, &thought.Hearts, &thought.Category, &thought.CreatedAt, &thought.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan thought: %w", err)
		}
		thoughts = append(thoughts, &thought)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating thoughts: %w", err)
	}
	return thoughts, nil
}

func (r *thoughtRepository) Count(ctx context.Context, filter ports.ThoughtFilter) (int, error) {
	where, args := buildFilter(filter)

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM thoughts"+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count thoughts: %w", err)
	}
	return total, nil
}

func (r *thoughtRepository) Update(ctx context.Context, thought *domain.Thought) error {
	query := `UPDATE thoughts SET message = $2, category = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, thought.ID, thought.Message, thought.Category)
	if err != nil {
		return fmt.Errorf("failed to update thought: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrThoughtNotFound
	}
	return nil
}

func (r *thoughtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM thoughts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete thought: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrThoughtNotFound
	}
	return nil
}

// IncrementHearts bumps the counter in a single statement so concurrent
// likes on the same thought cannot lose updates.
func (r *thoughtRepository) IncrementHearts(ctx context.Context, id uuid.UUID) (*domain.Thought, error) {
	query := `
		UPDATE thoughts
		SET hearts = hearts + 1
		WHERE id = $1
		RETURNING id, message, hearts, category, created_at, user_id
	`
	var thought domain.Thought
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&thought.ID, &thought.Message, &thought.Hearts, &thought.Category, &thought.CreatedAt, &thought.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThoughtNotFound
		}
		return nil, fmt.Errorf("failed to increment hearts: %w", err)
	}
	return &thought, nil
}

func buildFilter(filter ports.ThoughtFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.MinHearts != nil {
		args = append(args, *filter.MinHearts)
		conds = append(conds, fmt.Sprintf("hearts >= $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
