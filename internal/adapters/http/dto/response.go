// Package dto provides HTTP request/response data transfer objects and the
// JSON error body for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// PersonResponse represents a single person in HTTP responses.
type PersonResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ToPersonResponse converts a domain Person to its HTTP response shape.
func ToPersonResponse(p *person.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPersonListResponse converts a slice of persons; an empty slice encodes
// as [] rather than null.
func ToPersonListResponse(persons []person.Person) []PersonResponse {
	items := make([]PersonResponse, len(persons))
	for i := range persons {
		items[i] = ToPersonResponse(&persons[i])
	}
	return items
}

// TodoListResponse represents a single todo list in HTTP responses,
// including the owner's name.
type TodoListResponse struct {
	ID         int64  `json:"id"`
	PersonID   int64  `json:"personId"`
	PersonName string `json:"personName"`
	Title      string `json:"title"`
	CreatedAt  string `json:"createdAt"`
}

// ToTodoListResponse converts a domain TodoList to its HTTP response shape.
func ToTodoListResponse(l *todolist.TodoList) TodoListResponse {
	return TodoListResponse{
		ID:         l.ID,
		PersonID:   l.PersonID,
		PersonName: l.PersonName,
		Title:      l.Title,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTodoListListResponse converts a slice of todo lists.
func ToTodoListListResponse(lists []todolist.TodoList) []TodoListResponse {
	items := make([]TodoListResponse, len(lists))
	for i := range lists {
		items[i] = ToTodoListResponse(&lists[i])
	}
	return items
}

// CategoryResponse represents a single category in HTTP responses.
type CategoryResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ColorHex  *string `json:"colorHex"`
	CreatedAt string  `json:"createdAt"`
}

// ToCategoryResponse converts a domain Category to its HTTP response shape.
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ColorHex:  c.ColorHex,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToCategoryListResponse converts a slice of categories.
func ToCategoryListResponse(categories []category.Category) []CategoryResponse {
	items := make([]CategoryResponse, len(categories))
	for i := range categories {
		items[i] = ToCategoryResponse(&categories[i])
	}
	return items
}

// ListItemResponse represents a single list item in HTTP responses. Category
// name/color are denormalized from the referenced category (null when
// uncategorized) and files carries attachment metadata, newest first.
type ListItemResponse struct {
	ID               int64          `json:"id"`
	TodoListID       int64          `json:"todoListId"`
	CategoryID       *int64         `json:"categoryId"`
	CategoryName     *string        `json:"categoryName"`
	CategoryColorHex *string        `json:"categoryColorHex"`
	Title            string         `json:"title"`
	IsDone           bool           `json:"isDone"`
	DueAt            *string        `json:"dueAt"`
	SortOrder        int            `json:"sortOrder"`
	Notes            *string        `json:"notes"`
	Files            []FileResponse `json:"files"`
	CreatedAt        string         `json:"createdAt"`
}

// ToListItemResponse converts a domain ListItem to its HTTP response shape.
func ToListItemResponse(i *listitem.ListItem) ListItemResponse {
	resp := ListItemResponse{
		ID:               i.ID,
		TodoListID:       i.TodoListID,
		CategoryID:       i.CategoryID,
		CategoryName:     i.CategoryName,
		CategoryColorHex: i.CategoryColorHex,
		Title:            i.Title,
		IsDone:           i.IsDone,
		SortOrder:        i.SortOrder,
		Notes:            i.Notes,
		Files:            ToFileListResponse(i.Files),
		CreatedAt:        i.CreatedAt.UTC().Format(time.RFC3339),
	}
	if i.DueAt != nil {
		due := i.DueAt.UTC().Format(time.RFC3339)
		resp.DueAt = &due
	}
	return resp
}

// ToListItemListResponse converts a slice of list items.
func ToListItemListResponse(items []listitem.ListItem) []ListItemResponse {
	out := make([]ListItemResponse, len(items))
	for i := range items {
		out[i] = ToListItemResponse(&items[i])
	}
	return out
}

// FileResponse represents attachment metadata in HTTP responses. Payload
// bytes are never part of JSON bodies; downloads stream them separately.
type FileResponse struct {
	ID          int64  `json:"id"`
	ListItemID  int64  `json:"listItemId"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	CreatedAt   string `json:"createdAt"`
}

// ToFileResponse converts a domain File to its metadata response shape.
// A missing stored content type is reported as application/octet-stream.
func ToFileResponse(f *listitem.File) FileResponse {
	return FileResponse{
		ID:          f.ID,
		ListItemID:  f.ListItemID,
		FileName:    f.FileName,
		ContentType: f.EffectiveContentType(),
		SizeBytes:   f.Size,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToFileListResponse converts a slice of files.
func ToFileListResponse(files []listitem.File) []FileResponse {
	out := make([]FileResponse, len(files))
	for i := range files {
		out[i] = ToFileResponse(&files[i])
	}
	return out
}
