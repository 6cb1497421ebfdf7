package app

import (
	"errors"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

// isClientError reports whether err is one of the domain's client-facing
// error categories. Client errors are expected outcomes and are not logged
// at error level; everything else is a persistence or programming failure.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrReference) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}
