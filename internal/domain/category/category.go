// Package category defines the Category entity, a named colored tag
// applicable to list items. Names are globally unique.
package category

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// MaxNameLen is the maximum length of a category name.
const MaxNameLen = 100

// Category is referenced by zero or more list items. Deleting a category
// sets the referencing items' category to null, it never deletes them.
type Category struct {
	ID        int64
	Name      string
	ColorHex  *string
	CreatedAt time.Time
}

// Validate checks business rules for the Category entity. Rules are applied
// in order and the first violation is returned.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.Validationf("Name is required.")
	}
	if len(c.Name) > MaxNameLen {
		return domain.Validationf("Name must be at most %d characters.", MaxNameLen)
	}
	if c.ColorHex != nil && !domain.IsValidHex(*c.ColorHex) {
		return domain.Validationf("ColorHex must be a hex color in #RRGGBB format.")
	}
	return nil
}
