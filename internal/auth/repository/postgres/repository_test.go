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

	"github.com/adamkopczynski/todo-api/internal/auth/domain"
	repo "github.com/adamkopczynski/todo-api/internal/auth/repository/postgres"
)

var userColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-123",
		Email:        "user@example.com",
		PasswordHash: "digest",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
	})
}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	userEmail := "user@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", userEmail, "digest", time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, userEmail, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestGetByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	token := "signed-token"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.email").
			WithArgs(token, "auth").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "user@example.com", "digest", time.Now(), time.Now()))

		user, err := r.GetByToken(ctx, token, "auth")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("no matching session", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.email").
			WithArgs(token, "auth").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByToken(ctx, token, "auth")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.email").
			WithArgs(token, "auth").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByToken(ctx, token, "auth")
		assert.Error(t, err)
	})
}

func TestAddSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "session-123",
		UserID:    "user-123",
		Scope:     "auth",
		Token:     "signed-token",
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(session.ID, session.UserID, session.Scope, session.Token, session.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.AddSession(ctx, session)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(session.ID, session.UserID, session.Scope, session.Token, session.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.AddSession(ctx, session)
		assert.Error(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM sessions").
			WithArgs("user-123", "signed-token").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := r.DeleteSession(ctx, "user-123", "signed-token")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM sessions").
			WithArgs("user-123", "signed-token").
			WillReturnError(fmt.Errorf("db error"))

		err := r.DeleteSession(ctx, "user-123", "signed-token")
		assert.Error(t, err)
	})
}
