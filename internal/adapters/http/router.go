// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	personHandler *handlers.PersonHandler,
	todoListHandler *handlers.TodoListHandler,
	categoryHandler *handlers.CategoryHandler,
	listItemHandler *handlers.ListItemHandler,
	fileHandler *handlers.FileHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside the /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Persons.
		r.Get("/persons", personHandler.ListPersons)
		r.Post("/persons", personHandler.CreatePerson)

		// Todo lists.
		r.Get("/todolists/by-person/{personId}", todoListHandler.ListByPerson)
		r.Post("/todolists", todoListHandler.CreateTodoList)
		r.Delete("/todolists/{id}", todoListHandler.DeleteTodoList)

		// Categories.
		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{id}", categoryHandler.GetCategory)
		r.Post("/categories", categoryHandler.CreateCategory)
		r.Put("/categories/{id}", categoryHandler.UpdateCategory)
		r.Delete("/categories/{id}", categoryHandler.DeleteCategory)

		// List items.
		r.Get("/listitems/by-list/{listId}", listItemHandler.ListByTodoList)
		r.Post("/listitems", listItemHandler.CreateListItem)
		r.Put("/listitems/{id}", listItemHandler.UpdateListItem)
		r.Post("/listitems/{id}/toggle", listItemHandler.ToggleListItem)
		r.Delete("/listitems/{id}", listItemHandler.DeleteListItem)

		// Attachments. The bare file route and /download serve the same bytes.
		r.Get("/list-items/{listItemId}/files", fileHandler.ListFiles)
		r.Post("/list-items/{listItemId}/files", fileHandler.UploadFiles)
		r.Get("/list-items/{listItemId}/files/{fileId}", fileHandler.GetFile)
		r.Get("/list-items/{listItemId}/files/{fileId}/download", fileHandler.GetFile)
		r.Delete("/list-items/{listItemId}/files/{fileId}", fileHandler.DeleteFile)
	})

	return r
}
