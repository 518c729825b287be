package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adamkopczynski/todo-api/internal/todo/domain"
)

// DB mirrors the pool subset used by the auth repository; pgxmock pools
// satisfy it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, todo *domain.Todo) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO todos (id, text, completed, completed_at, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, todo.ID, todo.Text, todo.Completed, todo.CompletedAt, todo.CreatorID, todo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID string) ([]domain.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, creator_id, created_at
		FROM todos
		WHERE creator_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatorID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, creatorID string) (*domain.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, creator_id, created_at
		FROM todos
		WHERE id = $1 AND creator_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id, creatorID)

	var t domain.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatorID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return &t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, todo *domain.Todo) error {
	_, err := r.db.Exec(ctx, `
		UPDATE todos
		SET text = $1, completed = $2, completed_at = $3
		WHERE id = $4 AND creator_id = $5
	`, todo.Text, todo.Completed, todo.CompletedAt, todo.ID, todo.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete removes the row and returns it, so the handler can echo the
// removed todo the way the API always has.
func (r *PostgresRepository) Delete(ctx context.Context, id, creatorID string) (*domain.Todo, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND creator_id = $2
		RETURNING id, text, completed, completed_at, creator_id, created_at;
	`
	row := r.db.QueryRow(ctx, query, id, creatorID)

	var t domain.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CompletedAt, &t.CreatorID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete todo: %w", err)
	}

	return &t, nil
}
