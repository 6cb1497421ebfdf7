// Package listitem defines the ListItem entity, a single task within a todo
// list, and its File attachments.
package listitem

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// MaxTitleLen is the maximum length of an item title.
const MaxTitleLen = 200

// ListItem belongs to exactly one TodoList (immutable after creation) and
// optionally references a Category. Deleting the list cascades here;
// deleting the category nulls CategoryID.
type ListItem struct {
	ID         int64
	TodoListID int64
	CategoryID *int64
	Title      string
	IsDone     bool
	DueAt      *time.Time
	SortOrder  int
	Notes      *string
	CreatedAt  time.Time

	// Read-side fields assembled by the service layer: the referenced
	// category's name and color (nil when uncategorized) and attachment
	// metadata ordered most recent first. Never written back.
	CategoryName     *string
	CategoryColorHex *string
	Files            []File
}

// Validate checks business rules for the ListItem entity. Rules are applied
// in order and the first violation is returned.
func (i *ListItem) Validate() error {
	if i.TodoListID <= 0 {
		return domain.Validationf("TodoListId must be a positive number.")
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		return domain.Validationf("CategoryId must be a positive number.")
	}
	if strings.TrimSpace(i.Title) == "" {
		return domain.Validationf("Title is required.")
	}
	if len(i.Title) > MaxTitleLen {
		return domain.Validationf("Title must be at most %d characters.", MaxTitleLen)
	}
	return nil
}
