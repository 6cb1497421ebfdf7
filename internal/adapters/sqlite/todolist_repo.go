package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// ListTodoListsByPerson returns a person's lists ordered by id ascending.
// The owner's name is joined in for the read-side DTO.
func (s *Store) ListTodoListsByPerson(ctx context.Context, personID int64) ([]todolist.TodoList, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT t.id, t.person_id, t.title, t.created_at, p.full_name
		FROM todo_lists t
		JOIN persons p ON p.id = t.person_id
		WHERE t.person_id = ?
		ORDER BY t.id`,
		personID)
	if err != nil {
		return nil, fmt.Errorf("querying todo lists for person %d: %w", personID, err)
	}
	defer rows.Close()

	var lists []todolist.TodoList
	for rows.Next() {
		var l todolist.TodoList
		if err := rows.Scan(&l.ID, &l.PersonID, &l.Title, &l.CreatedAt, &l.PersonName); err != nil {
			return nil, fmt.Errorf("scanning todo list row: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// InsertTodoList persists a new list, assigning its id and creation time.
func (s *Store) InsertTodoList(ctx context.Context, l *todolist.TodoList) error {
	l.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO todo_lists (person_id, title, created_at) VALUES (?, ?, ?)",
		l.PersonID, l.Title, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting todo list: %w", err)
	}

	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading todo list id: %w", err)
	}
	return nil
}

// TodoListExists reports whether a list row with the given id exists.
func (s *Store) TodoListExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM todo_lists WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking todo list %d: %w", id, err)
	}
	return count > 0, nil
}

// DeleteTodoList removes a list. Its items and their files go with it via
// the schema's delete cascade.
func (s *Store) DeleteTodoList(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo list %d: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("TodoList %d not found.", id)
	}
	return nil
}
