package handler

//go:generate mockgen -destination=../../mocks/mock_todo_repository.go -package=mocks github.com/adamkopczynski/todo-api/internal/todo/domain TodoRepository

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	authdomain "github.com/adamkopczynski/todo-api/internal/auth/domain"
	"github.com/adamkopczynski/todo-api/internal/todo/domain"
	"github.com/adamkopczynski/todo-api/internal/todo/dto"
	"github.com/adamkopczynski/todo-api/pkg/constant"
)

// TodoHandler is field-level CRUD over the caller's own todos. All
// routes sit behind the auth guard, so Locals always carries a user.
type TodoHandler struct {
	repo domain.TodoRepository
	log  zerolog.Logger
}

func NewTodoHandler(repo domain.TodoRepository, log zerolog.Logger) *TodoHandler {
	return &TodoHandler{repo: repo, log: log}
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTodoInput
	if err := c.BodyParser(&input); err != nil || input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user := c.Locals(constant.LocalUser).(*authdomain.User)
	todo := &domain.Todo{
		ID:        uuid.New().String(),
		Text:      input.Text,
		CreatorID: user.ID,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(c.Context(), todo); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to create todo")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTodoOutput(todo))
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*authdomain.User)

	todos, err := h.repo.ListByCreator(c.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to list todos")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	out := make([]dto.TodoOutput, 0, len(todos))
	for i := range todos {
		out = append(out, dto.NewTodoOutput(&todos[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"todos": out})
}

func (h *TodoHandler) Get(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*authdomain.User)

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	todo, err := h.repo.GetByID(c.Context(), id, user.ID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to get todo")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if todo == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"todo": dto.NewTodoOutput(todo)})
}

// Update applies a partial patch. Completing a todo stamps
// completed_at; marking it incomplete clears the stamp.
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*authdomain.User)

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var input dto.UpdateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	todo, err := h.repo.GetByID(c.Context(), id, user.ID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to get todo")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if todo == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if input.Text != nil {
		todo.Text = *input.Text
	}
	if input.Completed != nil && *input.Completed {
		now := time.Now()
		todo.Completed = true
		todo.CompletedAt = &now
	} else {
		todo.Completed = false
		todo.CompletedAt = nil
	}

	if err := h.repo.Update(c.Context(), todo); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to update todo")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"todo": dto.NewTodoOutput(todo)})
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*authdomain.User)

	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	todo, err := h.repo.Delete(c.Context(), id, user.ID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to delete todo")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if todo == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"todo": dto.NewTodoOutput(todo)})
}
