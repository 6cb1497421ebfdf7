package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// CategoryHandler handles HTTP requests for category CRUD operations.
type CategoryHandler struct {
	svc ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the given service port.
func NewCategoryHandler(svc ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryListResponse(categories))
}

// GetCategory handles GET /api/categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "Category id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCategoryResponse(c))
}

// CreateCategory handles POST /api/categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCategory(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/categories/%d", created.ID))
	writeJSON(w, http.StatusCreated, dto.ToCategoryResponse(created))
}

// UpdateCategory handles PUT /api/categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "Category id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.UpdateCategory(r.Context(), id, req.ToDomain()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCategory handles DELETE /api/categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id", "Category id must be a positive number.")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
