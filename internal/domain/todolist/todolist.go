// Package todolist defines the TodoList entity, a named collection of items
// owned by exactly one person.
package todolist

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// MaxTitleLen is the maximum length of a list title.
const MaxTitleLen = 200

// TodoList is owned by one Person. Deleting the owner cascades here;
// deleting a list cascades to its items.
type TodoList struct {
	ID        int64
	PersonID  int64
	Title     string
	CreatedAt time.Time

	// PersonName is the owner's full name, populated on reads for client
	// convenience. Never written back.
	PersonName string
}

// Validate checks business rules for the TodoList entity. Rules are applied
// in order and the first violation is returned.
func (t *TodoList) Validate() error {
	if t.PersonID <= 0 {
		return domain.Validationf("PersonId must be a positive number.")
	}
	if strings.TrimSpace(t.Title) == "" {
		return domain.Validationf("Title is required.")
	}
	if len(t.Title) > MaxTitleLen {
		return domain.Validationf("Title must be at most %d characters.", MaxTitleLen)
	}
	return nil
}
