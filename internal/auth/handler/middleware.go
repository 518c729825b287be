package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adamkopczynski/todo-api/pkg/constant"
)

// Authenticate guards protected routes. It reads the x-auth header,
// resolves it to a user, and stashes user and raw token in Locals for
// downstream handlers. Any failure short-circuits with 401 and an empty
// body; the handler behind the guard never runs.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	token := c.Get(constant.AuthHeader)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).Send(nil)
	}

	// Every resolution failure, storage included, maps to the same 401
	// with an empty body.
	user, err := h.userService.FindByToken(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Send(nil)
	}

	c.Locals(constant.LocalUser, user)
	c.Locals(constant.LocalToken, token)

	return c.Next()
}
