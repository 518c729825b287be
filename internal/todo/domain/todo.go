package domain

import (
	"context"
	"time"
)

type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatorID   string
	CreatedAt   time.Time
}

// TodoRepository is plain ownership-scoped CRUD. Every lookup filters
// by creator, so one user can never see or touch another user's rows;
// a foreign-owned id behaves exactly like a missing one. Lookups return
// (nil, nil) when no row matches.
type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) error
	ListByCreator(ctx context.Context, creatorID string) ([]Todo, error)
	GetByID(ctx context.Context, id, creatorID string) (*Todo, error)
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, id, creatorID string) (*Todo, error)
}
