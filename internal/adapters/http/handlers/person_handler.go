// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// PersonHandler handles HTTP requests for person operations.
type PersonHandler struct {
	svc ports.PersonService
}

// NewPersonHandler creates a new PersonHandler with the given service port.
func NewPersonHandler(svc ports.PersonService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// ListPersons handles GET /api/persons.
func (h *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.svc.ListPersons(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPersonListResponse(persons))
}

// CreatePerson handles POST /api/persons.
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePersonRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreatePerson(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/persons")
	writeJSON(w, http.StatusCreated, dto.ToPersonResponse(created))
}
