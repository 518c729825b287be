package handler

import (
	"github.com/gofiber/fiber/v2"

	todohandler "github.com/adamkopczynski/todo-api/internal/todo/handler"
)

// RegisterRoutes wires the public user routes and the token-guarded
// todo routes onto app.
func RegisterRoutes(app *fiber.App, h *AuthHandler, th *todohandler.TodoHandler) {
	app.Post("/users", h.Register)
	app.Post("/users/login", h.Login)
	app.Get("/users/me", h.Authenticate, h.Me)
	app.Delete("/users/me/token", h.Authenticate, h.Logout)

	todos := app.Group("/todos", h.Authenticate)
	todos.Post("/", th.Create)
	todos.Get("/", th.List)
	todos.Get("/:id", th.Get)
	todos.Patch("/:id", th.Update)
	todos.Delete("/:id", th.Delete)
}
