package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// ListItemHandler handles HTTP requests for list item operations.
type ListItemHandler struct {
	svc ports.ListItemService
}

// NewListItemHandler creates a new ListItemHandler with the given service port.
func NewListItemHandler(svc ports.ListItemService) *ListItemHandler {
	return &ListItemHandler{svc: svc}
}

// ListByTodoList handles GET /api/listitems/by-list/{listId}.
func (h *ListItemHandler) ListByTodoList(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, "listId", "TodoList id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListByTodoList(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListItemListResponse(items))
}

// CreateListItem handles POST /api/listitems.
func (h *ListItemHandler) CreateListItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListItemRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateListItem(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/listitems/by-list/%d", created.TodoListID))
	writeJSON(w, http.StatusCreated, dto.ToListItemResponse(created))
}

// UpdateListItem handles PUT /api/listitems/{id}.
func (h *ListItemHandler) UpdateListItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "ListItem id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateListItemRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateListItem(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListItemResponse(updated))
}

// ToggleListItem handles POST /api/listitems/{id}/toggle.
func (h *ListItemHandler) ToggleListItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "ListItem id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	toggled, err := h.svc.ToggleListItem(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListItemResponse(toggled))
}

// DeleteListItem handles DELETE /api/listitems/{id}.
func (h *ListItemHandler) DeleteListItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "ListItem id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteListItem(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
