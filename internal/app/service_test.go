package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/todo-list-api/internal/adapters/sqlite"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// Service tests run against a real in-memory store so that referential
// checks, cascades and read-side assembly are exercised end to end.

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.New(":memory:", 0)
	if err != nil {
		t.Fatalf("sqlite.New(:memory:) error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedPerson(t *testing.T, s *sqlite.Store) int64 {
	t.Helper()

	p := &person.Person{FullName: "Ada Lovelace", Email: "ada@example.com"}
	if err := s.InsertPerson(context.Background(), p); err != nil {
		t.Fatalf("InsertPerson() error = %v", err)
	}
	return p.ID
}

func seedTodoList(t *testing.T, s *sqlite.Store, personID int64) int64 {
	t.Helper()

	l := &todolist.TodoList{PersonID: personID, Title: "Groceries"}
	if err := s.InsertTodoList(context.Background(), l); err != nil {
		t.Fatalf("InsertTodoList() error = %v", err)
	}
	return l.ID
}

func seedCategory(t *testing.T, s *sqlite.Store, name string) int64 {
	t.Helper()

	c := &category.Category{Name: name, ColorHex: strPtr("#112233")}
	if err := s.InsertCategory(context.Background(), c); err != nil {
		t.Fatalf("InsertCategory() error = %v", err)
	}
	return c.ID
}

func seedListItem(t *testing.T, s *sqlite.Store, listID int64, title string) int64 {
	t.Helper()

	i := &listitem.ListItem{TodoListID: listID, Title: title}
	if err := s.InsertListItem(context.Background(), i); err != nil {
		t.Fatalf("InsertListItem() error = %v", err)
	}
	return i.ID
}
