package dto

import (
	"time"

	"github.com/adamkopczynski/todo-api/internal/todo/domain"
)

type CreateTodoInput struct {
	Text string `json:"text"`
}

// UpdateTodoInput distinguishes "absent" from zero values via pointers.
type UpdateTodoInput struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type TodoOutput struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatorID   string     `json:"creator_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewTodoOutput(todo *domain.Todo) TodoOutput {
	return TodoOutput{
		ID:          todo.ID,
		Text:        todo.Text,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		CreatorID:   todo.CreatorID,
		CreatedAt:   todo.CreatedAt,
	}
}
