// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"noteful/internal/adapters/http/auth"
	"noteful/internal/adapters/http/folders"
	"noteful/internal/adapters/http/httperr"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/adapters/http/notes"
	"noteful/internal/adapters/http/tags"
	"noteful/internal/adapters/http/users"
	"noteful/internal/app"
	"noteful/internal/ports/repositories"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	fiberApp *fiber.App,
	noteRepo repositories.NoteRepository,
	folderRepo repositories.FolderRepository,
	tagRepo repositories.TagRepository,
	authUseCase app.AuthUseCase,
) {
	notesHandler := notes.NewHandler(noteRepo)
	foldersHandler := folders.NewHandler(folderRepo)
	tagsHandler := tags.NewHandler(tagRepo)
	usersHandler := users.NewHandler(authUseCase)
	authHandler := auth.NewHandler(authUseCase)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewRequestIDMiddleware())
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	api := fiberApp.Group("/api")

	notesRoutes := api.Group("/notes")
	notesRoutes.Get("/", notesHandler.List)
	notesRoutes.Get("/:id", notesHandler.Get)
	notesRoutes.Post("/", notesHandler.Create)
	notesRoutes.Put("/:id", notesHandler.Update)
	notesRoutes.Delete("/:id", notesHandler.Delete)

	foldersRoutes := api.Group("/folders")
	foldersRoutes.Get("/", foldersHandler.List)
	foldersRoutes.Get("/:id", foldersHandler.Get)
	foldersRoutes.Post("/", foldersHandler.Create)
	foldersRoutes.Put("/:id", foldersHandler.Update)
	foldersRoutes.Delete("/:id", foldersHandler.Delete)

	tagsRoutes := api.Group("/tags")
	tagsRoutes.Get("/", tagsHandler.List)
	tagsRoutes.Get("/:id", tagsHandler.Get)
	tagsRoutes.Post("/", tagsHandler.Create)
	tagsRoutes.Put("/:id", tagsHandler.Update)
	tagsRoutes.Delete("/:id", tagsHandler.Delete)

	api.Post("/users", usersHandler.Register)
	api.Post("/login", authHandler.Login)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return httperr.NotFound(c)
	})
}
