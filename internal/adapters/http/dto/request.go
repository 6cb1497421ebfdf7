package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// Request bodies decode the camelCase wire shape and map onto domain
// entities. Business-rule validation (required fields, lengths, formats)
// lives in the domain and services, not here.

// CreatePersonRequest is the JSON body for creating a person.
type CreatePersonRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ToDomain maps the request onto a new Person.
func (r *CreatePersonRequest) ToDomain() *person.Person {
	return &person.Person{
		FullName: r.FullName,
		Email:    r.Email,
	}
}

// CreateTodoListRequest is the JSON body for creating a todo list.
type CreateTodoListRequest struct {
	PersonID int64  `json:"personId"`
	Title    string `json:"title"`
}

// ToDomain maps the request onto a new TodoList.
func (r *CreateTodoListRequest) ToDomain() *todolist.TodoList {
	return &todolist.TodoList{
		PersonID: r.PersonID,
		Title:    r.Title,
	}
}

// CategoryRequest is the JSON body for creating or replacing a category.
type CategoryRequest struct {
	Name     string  `json:"name"`
	ColorHex *string `json:"colorHex"`
}

// ToDomain maps the request onto a Category.
func (r *CategoryRequest) ToDomain() *category.Category {
	return &category.Category{
		Name:     r.Name,
		ColorHex: r.ColorHex,
	}
}

// CreateListItemRequest is the JSON body for creating a list item. New items
// always start not-done at sort order zero; the wire shape doesn't carry
// either field.
type CreateListItemRequest struct {
	TodoListID int64      `json:"todoListId"`
	CategoryID *int64     `json:"categoryId"`
	Title      string     `json:"title"`
	DueAt      *time.Time `json:"dueAt"`
	Notes      *string    `json:"notes"`
}

// ToDomain maps the request onto a new ListItem.
func (r *CreateListItemRequest) ToDomain() *listitem.ListItem {
	return &listitem.ListItem{
		TodoListID: r.TodoListID,
		CategoryID: r.CategoryID,
		Title:      r.Title,
		DueAt:      r.DueAt,
		Notes:      r.Notes,
	}
}

// UpdateListItemRequest is the JSON body for replacing a list item's mutable
// fields. Every field is overwritten from this shape; omitted optional fields
// clear the stored value.
type UpdateListItemRequest struct {
	CategoryID *int64     `json:"categoryId"`
	Title      string     `json:"title"`
	IsDone     bool       `json:"isDone"`
	DueAt      *time.Time `json:"dueAt"`
	SortOrder  int        `json:"sortOrder"`
	Notes      *string    `json:"notes"`
}

// ToDomain maps the request onto a ListItem value carrying the replacement
// fields. ID and TodoListID are filled in by the service.
func (r *UpdateListItemRequest) ToDomain() *listitem.ListItem {
	return &listitem.ListItem{
		CategoryID: r.CategoryID,
		Title:      r.Title,
		IsDone:     r.IsDone,
		DueAt:      r.DueAt,
		SortOrder:  r.SortOrder,
		Notes:      r.Notes,
	}
}
