package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/adamkopczynski/todo-api/internal/auth/domain UserRepository

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/adamkopczynski/todo-api/internal/auth/domain"
	"github.com/adamkopczynski/todo-api/internal/auth/dto"
	"github.com/adamkopczynski/todo-api/internal/auth/password"
	autherror "github.com/adamkopczynski/todo-api/internal/errors"
	"github.com/adamkopczynski/todo-api/pkg/constant"
)

// UserService implements the identity operations: registration,
// credential lookup, token resolution, and per-session add/remove.
type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	hasher *password.Hasher
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, hasher *password.Hasher) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
	}
}

// Register validates the input, hashes the password, and persists a new
// user with an empty session list. The plaintext password never reaches
// the repository.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil || input.Email == "" {
		return nil, autherror.ErrInvalidEmail
	}
	if len(input.Password) < constant.MinPasswordLength {
		return nil, autherror.ErrWeakPassword
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindByCredentials resolves an email/password pair to a user. Unknown
// email and wrong password are deliberately indistinguishable: both
// return ErrInvalidCredentials.
func (s *UserService) FindByCredentials(ctx context.Context, email, plaintext string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}
	return user, nil
}

// FindByToken resolves a bearer token to a user. The token must both
// verify under the process secret and still exist in the user's session
// list; a cryptographically valid token that was logged out fails here.
func (s *UserService) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, autherror.ErrInvalidCredentials
	}
	if claims.Scope != constant.ScopeAuth {
		return nil, autherror.ErrInvalidCredentials
	}

	user, err := s.repo.GetByToken(ctx, token, claims.Scope)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID != claims.UserID {
		return nil, autherror.ErrInvalidCredentials
	}
	return user, nil
}

// AddSession issues a fresh auth-scope token for user and appends it to
// the session list. The append is a single-row insert, so concurrent
// logins for one user cannot clobber each other.
func (s *UserService) AddSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.ID, constant.ScopeAuth)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Scope:     constant.ScopeAuth,
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddSession(ctx, session); err != nil {
		return "", err
	}

	return token, nil
}

// RemoveSession revokes exactly the given token. Other sessions of the
// same user stay valid.
func (s *UserService) RemoveSession(ctx context.Context, user *domain.User, token string) error {
	return s.repo.DeleteSession(ctx, user.ID, token)
}
