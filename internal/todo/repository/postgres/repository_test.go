package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamkopczynski/todo-api/internal/todo/domain"
	repo "github.com/adamkopczynski/todo-api/internal/todo/repository/postgres"
)

var todoColumns = []string{"id", "text", "completed", "completed_at", "creator_id", "created_at"}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	todo := &domain.Todo{
		ID:        "todo-123",
		Text:      "walk the dog",
		CreatorID: "user-123",
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO todos").
			WithArgs(todo.ID, todo.Text, todo.Completed, todo.CompletedAt, todo.CreatorID, todo.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, todo)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO todos").
			WithArgs(todo.ID, todo.Text, todo.Completed, todo.CompletedAt, todo.CreatorID, todo.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, todo)
		assert.Error(t, err)
	})
}

func TestListByCreator(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("returns only the creator's rows", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, text").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(todoColumns).
				AddRow("todo-1", "walk the dog", false, nil, "user-123", now).
				AddRow("todo-2", "water plants", true, &now, "user-123", now))

		todos, err := r.ListByCreator(ctx, "user-123")
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, "walk the dog", todos[0].Text)
		assert.True(t, todos[1].Completed)
		assert.NotNil(t, todos[1].CompletedAt)
	})

	t.Run("empty list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, text").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(todoColumns))

		todos, err := r.ListByCreator(ctx, "user-123")
		require.NoError(t, err)
		assert.Empty(t, todos)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, text").
			WithArgs("user-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ListByCreator(ctx, "user-123")
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, text").
			WithArgs("todo-123", "user-123").
			WillReturnRows(pgxmock.NewRows(todoColumns).
				AddRow("todo-123", "walk the dog", false, nil, "user-123", time.Now()))

		todo, err := r.GetByID(ctx, "todo-123", "user-123")
		require.NoError(t, err)
		assert.Equal(t, "todo-123", todo.ID)
	})

	t.Run("foreign-owned row behaves as missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, text").
			WithArgs("todo-123", "someone-else").
			WillReturnError(pgx.ErrNoRows)

		todo, err := r.GetByID(ctx, "todo-123", "someone-else")
		require.NoError(t, err)
		assert.Nil(t, todo)
	})
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	now := time.Now()
	todo := &domain.Todo{
		ID:          "todo-123",
		Text:        "walk the dog",
		Completed:   true,
		CompletedAt: &now,
		CreatorID:   "user-123",
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE todos").
			WithArgs(todo.Text, todo.Completed, todo.CompletedAt, todo.ID, todo.CreatorID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.Update(ctx, todo)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE todos").
			WithArgs(todo.Text, todo.Completed, todo.CompletedAt, todo.ID, todo.CreatorID).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Update(ctx, todo)
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("returns the removed row", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM todos").
			WithArgs("todo-123", "user-123").
			WillReturnRows(pgxmock.NewRows(todoColumns).
				AddRow("todo-123", "walk the dog", false, nil, "user-123", time.Now()))

		todo, err := r.Delete(ctx, "todo-123", "user-123")
		require.NoError(t, err)
		assert.Equal(t, "todo-123", todo.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM todos").
			WithArgs("todo-123", "user-123").
			WillReturnError(pgx.ErrNoRows)

		todo, err := r.Delete(ctx, "todo-123", "user-123")
		require.NoError(t, err)
		assert.Nil(t, todo)
	})
}
