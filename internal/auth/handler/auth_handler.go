package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/adamkopczynski/todo-api/internal/auth/domain"
	"github.com/adamkopczynski/todo-api/internal/auth/dto"
	"github.com/adamkopczynski/todo-api/internal/auth/service"
	autherror "github.com/adamkopczynski/todo-api/internal/errors"
	"github.com/adamkopczynski/todo-api/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
	log         zerolog.Logger
}

func NewAuthHandler(userService *service.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

// Register creates a user and immediately opens a session: the token
// travels back in the x-auth response header, the body carries only id
// and email.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if autherror.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.log.Error().Err(err).Msg("register failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	token, err := h.userService.AddSession(c.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to open session")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(constant.AuthHeader, token)
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

// Login responds 401 with an empty body on any credential failure; the
// response never says whether the email or the password was wrong.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	user, err := h.userService.FindByCredentials(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).Send(nil)
		}
		h.log.Error().Err(err).Msg("credential lookup failed")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	token, err := h.userService.AddSession(c.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to open session")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(constant.AuthHeader, token)
	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// Me returns the authenticated caller. Identity comes from the
// Authenticate middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*domain.User)
	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// Logout revokes exactly the token the request authenticated with;
// other sessions of the same user stay open.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := c.Locals(constant.LocalUser).(*domain.User)
	token := c.Locals(constant.LocalToken).(string)

	if err := h.userService.RemoveSession(c.Context(), user, token); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to remove session")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
