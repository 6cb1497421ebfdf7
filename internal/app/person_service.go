// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and persistence through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time check that PersonService implements ports.PersonService.
var _ ports.PersonService = (*PersonService)(nil)

// PersonService implements ports.PersonService. All validation happens here,
// before any repository call, so that invalid input never reaches the store.
type PersonService struct {
	persons ports.PersonRepository
	logger  *slog.Logger
}

// NewPersonService creates a PersonService.
func NewPersonService(persons ports.PersonRepository, logger *slog.Logger) *PersonService {
	return &PersonService{
		persons: persons,
		logger:  logger,
	}
}

// ListPersons returns all persons ordered by id ascending.
func (s *PersonService) ListPersons(ctx context.Context) ([]person.Person, error) {
	persons, err := s.persons.ListPersons(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list persons",
			slog.String("operation", "ListPersons"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return persons, nil
}

// CreatePerson validates and creates a new person, returning the created
// entity with its server-assigned id and creation time.
func (s *PersonService) CreatePerson(ctx context.Context, p *person.Person) (*person.Person, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.persons.InsertPerson(ctx, p); err != nil {
		s.logger.ErrorContext(ctx, "failed to create person",
			slog.String("operation", "CreatePerson"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "person created", slog.Int64("person_id", p.ID))
	return p, nil
}
