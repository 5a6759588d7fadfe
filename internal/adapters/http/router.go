// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeeper/internal/adapters/http/auth"
	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/adapters/http/notes"
	"notekeeper/internal/adapters/http/users"
	"notekeeper/internal/ports/api"
	svc "notekeeper/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authService api.AuthUseCase,
	userService api.UserUseCase,
	noteService api.NoteUseCase,
	tokenService svc.TokenService,
) {
	authHandler := auth.NewHandler(authService)
	userHandler := users.NewHandler(userService)
	noteHandler := notes.NewHandler(noteService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты.
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Защищенные маршруты: владелец извлекается из токена.
	authGuard := middleware.NewAuthMiddleware(tokenService)

	userRoutes := app.Group("/user")
	userRoutes.Use(authGuard)
	userRoutes.Delete("/", userHandler.DeleteUser)

	noteRoutes := app.Group("/note")
	noteRoutes.Use(authGuard)
	noteRoutes.Post("/", noteHandler.CreateNote)
	noteRoutes.Get("/", noteHandler.ListNotes)
	noteRoutes.Put("/", noteHandler.UpdateNote)
	noteRoutes.Delete("/", noteHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
