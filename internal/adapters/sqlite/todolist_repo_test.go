package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
)

func TestListTodoListsByPerson_EmbedsPersonName(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	adaID := mustInsertPerson(t, s, "Ada Lovelace", "ada@example.com")
	bobID := mustInsertPerson(t, s, "Bob Martin", "bob@example.com")
	firstID := mustInsertTodoList(t, s, adaID, "Groceries")
	secondID := mustInsertTodoList(t, s, adaID, "Chores")
	mustInsertTodoList(t, s, bobID, "Reading")

	lists, err := s.ListTodoListsByPerson(ctx, adaID)
	if err != nil {
		t.Fatalf("ListTodoListsByPerson() error = %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("ListTodoListsByPerson() len = %d, want 2", len(lists))
	}
	if lists[0].ID != firstID || lists[1].ID != secondID {
		t.Errorf("order = [%d, %d], want [%d, %d]", lists[0].ID, lists[1].ID, firstID, secondID)
	}
	for _, l := range lists {
		if l.PersonName != "Ada Lovelace" {
			t.Errorf("PersonName = %q, want %q", l.PersonName, "Ada Lovelace")
		}
	}
}

func TestTodoListExists(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	personID := mustInsertPerson(t, s, "Ada Lovelace", "ada@example.com")
	listID := mustInsertTodoList(t, s, personID, "Groceries")

	exists, err := s.TodoListExists(ctx, listID)
	if err != nil {
		t.Fatalf("TodoListExists() error = %v", err)
	}
	if !exists {
		t.Error("TodoListExists(existing) = false, want true")
	}

	exists, err = s.TodoListExists(ctx, 999)
	if err != nil {
		t.Fatalf("TodoListExists() error = %v", err)
	}
	if exists {
		t.Error("TodoListExists(missing) = true, want false")
	}
}

func TestDeleteTodoList_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	err := s.DeleteTodoList(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTodoList() error = %v, want ErrNotFound", err)
	}
}

func TestListPersons_OrderedByID(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	adaID := mustInsertPerson(t, s, "Ada Lovelace", "ada@example.com")
	bobID := mustInsertPerson(t, s, "Bob Martin", "bob@example.com")

	persons, err := s.ListPersons(context.Background())
	if err != nil {
		t.Fatalf("ListPersons() error = %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("ListPersons() len = %d, want 2", len(persons))
	}
	if persons[0].ID != adaID || persons[1].ID != bobID {
		t.Errorf("order = [%d, %d], want [%d, %d]", persons[0].ID, persons[1].ID, adaID, bobID)
	}
}
