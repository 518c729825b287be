package dto

import (
	"github.com/adamkopczynski/todo-api/internal/auth/domain"
)

// UserOutput is the only user shape that leaves the service. Password
// hashes never appear on the wire.
type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:    user.ID,
		Email: user.Email,
	}
}
