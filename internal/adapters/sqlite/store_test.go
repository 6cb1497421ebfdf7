package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// newTestStore opens a fresh in-memory store with migrations applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(":memory:", 0)
	if err != nil {
		t.Fatalf("New(:memory:) error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustInsertPerson(t *testing.T, s *Store, fullName, email string) int64 {
	t.Helper()

	p := &person.Person{FullName: fullName, Email: email}
	if err := s.InsertPerson(context.Background(), p); err != nil {
		t.Fatalf("InsertPerson() error = %v", err)
	}
	return p.ID
}

func mustInsertTodoList(t *testing.T, s *Store, personID int64, title string) int64 {
	t.Helper()

	l := &todolist.TodoList{PersonID: personID, Title: title}
	if err := s.InsertTodoList(context.Background(), l); err != nil {
		t.Fatalf("InsertTodoList() error = %v", err)
	}
	return l.ID
}

func mustInsertCategory(t *testing.T, s *Store, name string, colorHex *string) int64 {
	t.Helper()

	c := &category.Category{Name: name, ColorHex: colorHex}
	if err := s.InsertCategory(context.Background(), c); err != nil {
		t.Fatalf("InsertCategory() error = %v", err)
	}
	return c.ID
}

func mustInsertListItem(t *testing.T, s *Store, i *listitem.ListItem) int64 {
	t.Helper()

	if err := s.InsertListItem(context.Background(), i); err != nil {
		t.Fatalf("InsertListItem() error = %v", err)
	}
	return i.ID
}

func mustInsertFile(t *testing.T, s *Store, listItemID int64, name string, data []byte) int64 {
	t.Helper()

	files := []listitem.File{{
		ListItemID:  listItemID,
		FileName:    name,
		ContentType: "text/plain",
		Size:        int64(len(data)),
		Data:        data,
	}}
	if err := s.InsertFiles(context.Background(), files); err != nil {
		t.Fatalf("InsertFiles() error = %v", err)
	}
	return files[0].ID
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if got := s.Name(); got != "sqlite" {
		t.Errorf("Name() = %q, want %q", got, "sqlite")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	// Running migrations again on an up-to-date schema must be a no-op.
	if err := s.runMigrations(); err != nil {
		t.Fatalf("second runMigrations() error = %v", err)
	}
}

func TestStore_InsertAssignsIDAndCreatedAt(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	p := &person.Person{FullName: "Ada Lovelace", Email: "ada@example.com"}
	if err := s.InsertPerson(context.Background(), p); err != nil {
		t.Fatalf("InsertPerson() error = %v", err)
	}
	if p.ID == 0 {
		t.Error("InsertPerson() did not assign an ID")
	}
	if p.CreatedAt.IsZero() {
		t.Error("InsertPerson() did not assign CreatedAt")
	}
	if time.Since(p.CreatedAt) > time.Minute {
		t.Errorf("InsertPerson() CreatedAt = %v, want recent UTC timestamp", p.CreatedAt)
	}
}
