package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is one issued bearer token. A token authenticates a request
// only while its row exists; deleting the row revokes it regardless of
// the token's cryptographic validity.
type Session struct {
	ID        string
	UserID    string
	Scope     string
	Token     string
	CreatedAt time.Time
}
