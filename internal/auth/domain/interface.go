package domain

import "context"

// UserRepository persists users and their session tokens. Lookup methods
// return (nil, nil) when no row matches so callers can distinguish
// "absent" from a storage failure.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByToken(ctx context.Context, token, scope string) (*User, error)
	AddSession(ctx context.Context, session *Session) error
	DeleteSession(ctx context.Context, userID, token string) error
}
