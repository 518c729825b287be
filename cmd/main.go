package main

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/adamkopczynski/todo-api/config"
	"github.com/adamkopczynski/todo-api/db"
	"github.com/adamkopczynski/todo-api/internal/auth/handler"
	"github.com/adamkopczynski/todo-api/internal/auth/password"
	authrepo "github.com/adamkopczynski/todo-api/internal/auth/repository/postgres"
	"github.com/adamkopczynski/todo-api/internal/auth/service"
	"github.com/adamkopczynski/todo-api/internal/logging"
	todohandler "github.com/adamkopczynski/todo-api/internal/todo/handler"
	todorepo "github.com/adamkopczynski/todo-api/internal/todo/repository/postgres"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Env)

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	hasher := password.NewHasher(cfg.BcryptCost)
	userService := service.NewUserService(userRepo, tokenService, hasher)
	authHandler := handler.NewAuthHandler(userService, log)

	todoRepo := todorepo.NewPostgresRepository(dbPool)
	todoHandler := todohandler.NewTodoHandler(todoRepo, log)

	app := fiber.New()
	app.Use(logging.RequestLogger(log))
	handler.RegisterRoutes(app, authHandler, todoHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting API")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
