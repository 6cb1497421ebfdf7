package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time check that TodoListService implements ports.TodoListService.
var _ ports.TodoListService = (*TodoListService)(nil)

// TodoListService implements ports.TodoListService. It owns the referential
// check against persons: a list can only be created for an owner that exists,
// and listing by a missing owner is a not-found, not an empty collection.
type TodoListService struct {
	lists   ports.TodoListRepository
	persons ports.PersonRepository
	logger  *slog.Logger
}

// NewTodoListService creates a TodoListService.
func NewTodoListService(
	lists ports.TodoListRepository,
	persons ports.PersonRepository,
	logger *slog.Logger,
) *TodoListService {
	return &TodoListService{
		lists:   lists,
		persons: persons,
		logger:  logger,
	}
}

// ListByPerson returns all lists owned by the given person.
func (s *TodoListService) ListByPerson(ctx context.Context, personID int64) ([]todolist.TodoList, error) {
	if personID <= 0 {
		return nil, domain.Validationf("Person id must be a positive number.")
	}

	exists, err := s.persons.PersonExists(ctx, personID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check person",
			slog.String("operation", "ListByPerson"),
			slog.Int64("person_id", personID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !exists {
		return nil, domain.NotFoundf("Person %d not found.", personID)
	}

	lists, err := s.lists.ListTodoListsByPerson(ctx, personID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todo lists",
			slog.String("operation", "ListByPerson"),
			slog.Int64("person_id", personID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return lists, nil
}

// CreateTodoList validates the list, verifies the owner exists, and creates it.
func (s *TodoListService) CreateTodoList(ctx context.Context, l *todolist.TodoList) (*todolist.TodoList, error) {
	l.Title = strings.TrimSpace(l.Title)

	if err := l.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.persons.PersonExists(ctx, l.PersonID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check person",
			slog.String("operation", "CreateTodoList"),
			slog.Int64("person_id", l.PersonID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !exists {
		return nil, domain.Referencef("Person %d does not exist.", l.PersonID)
	}

	if err := s.lists.InsertTodoList(ctx, l); err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo list",
			slog.String("operation", "CreateTodoList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo list created",
		slog.Int64("todo_list_id", l.ID),
		slog.Int64("person_id", l.PersonID),
	)
	return l, nil
}

// DeleteTodoList deletes a list; its items and files go with it by cascade.
func (s *TodoListService) DeleteTodoList(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Validationf("TodoList id must be a positive number.")
	}

	if err := s.lists.DeleteTodoList(ctx, id); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to delete todo list",
				slog.String("operation", "DeleteTodoList"),
				slog.Int64("todo_list_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "todo list deleted", slog.Int64("todo_list_id", id))
	return nil
}
