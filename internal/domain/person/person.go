// Package person defines the Person entity, the root owner of todo lists.
package person

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// MaxFullNameLen is the maximum length of a person's full name.
const MaxFullNameLen = 100

// Person owns zero or more todo lists. Deleting a person cascades to its
// lists (and transitively to their items and files).
type Person struct {
	ID        int64
	FullName  string
	Email     string
	CreatedAt time.Time
}

// Validate checks business rules for the Person entity. Rules are applied in
// order and the first violation is returned.
func (p *Person) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return domain.Validationf("FullName is required.")
	}
	if len(p.FullName) > MaxFullNameLen {
		return domain.Validationf("FullName must be at most %d characters.", MaxFullNameLen)
	}
	if !domain.IsValidEmail(p.Email) {
		return domain.Validationf("Email must be a valid address.")
	}
	return nil
}
