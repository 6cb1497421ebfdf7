package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// TodoListHandler handles HTTP requests for todo list operations.
type TodoListHandler struct {
	svc ports.TodoListService
}

// NewTodoListHandler creates a new TodoListHandler with the given service port.
func NewTodoListHandler(svc ports.TodoListService) *TodoListHandler {
	return &TodoListHandler{svc: svc}
}

// ListByPerson handles GET /api/todolists/by-person/{personId}.
func (h *TodoListHandler) ListByPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := parseID(r, "personId", "Person id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	lists, err := h.svc.ListByPerson(r.Context(), personID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListListResponse(lists))
}

// CreateTodoList handles POST /api/todolists.
func (h *TodoListHandler) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoListRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTodoList(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/todolists/by-person/%d", created.PersonID))
	writeJSON(w, http.StatusCreated, dto.ToTodoListResponse(created))
}

// DeleteTodoList handles DELETE /api/todolists/{id}.
func (h *TodoListHandler) DeleteTodoList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "TodoList id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTodoList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
