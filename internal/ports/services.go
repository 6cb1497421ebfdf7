package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// PersonService defines the service port for person operations.
type PersonService interface {
	// ListPersons returns all persons ordered by id ascending.
	ListPersons(ctx context.Context) ([]person.Person, error)

	// CreatePerson validates and creates a new person, returning the
	// created entity with server-assigned fields (ID, CreatedAt).
	// Returns domain.ErrValidation if the person fails validation.
	CreatePerson(ctx context.Context, p *person.Person) (*person.Person, error)
}

// TodoListService defines the service port for todo list operations.
type TodoListService interface {
	// ListByPerson returns all lists owned by the given person, ordered by
	// id ascending, with the owner's name populated.
	// Returns domain.ErrNotFound if the person does not exist.
	ListByPerson(ctx context.Context, personID int64) ([]todolist.TodoList, error)

	// CreateTodoList validates the list, checks the referenced person
	// exists, and creates it.
	// Returns domain.ErrValidation or domain.ErrReference on failure.
	CreateTodoList(ctx context.Context, l *todolist.TodoList) (*todolist.TodoList, error)

	// DeleteTodoList deletes a list; its items (and their files) are
	// removed by cascade.
	// Returns domain.ErrNotFound if the list does not exist.
	DeleteTodoList(ctx context.Context, id int64) error
}

// CategoryService defines the service port for category operations.
type CategoryService interface {
	// ListCategories returns all categories ordered by id ascending.
	ListCategories(ctx context.Context) ([]category.Category, error)

	// GetCategory returns a single category by id.
	// Returns domain.ErrNotFound if it does not exist.
	GetCategory(ctx context.Context, id int64) (*category.Category, error)

	// CreateCategory validates the category, rejects duplicate names, and
	// creates it. Returns domain.ErrValidation or domain.ErrConflict.
	CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error)

	// UpdateCategory replaces the name and color of an existing category.
	// Returns domain.ErrNotFound, domain.ErrValidation or domain.ErrConflict.
	UpdateCategory(ctx context.Context, id int64, c *category.Category) error

	// DeleteCategory deletes a category; items referencing it keep existing
	// with their category set to null.
	// Returns domain.ErrNotFound if it does not exist.
	DeleteCategory(ctx context.Context, id int64) error
}

// ListItemService defines the service port for list item operations. Every
// returned item carries its category's name/color and attachment metadata
// (read-side assembly).
type ListItemService interface {
	// ListByTodoList returns the items of a list ordered by sort order
	// ascending, ties broken by id ascending.
	// Returns domain.ErrNotFound if the list does not exist.
	ListByTodoList(ctx context.Context, todoListID int64) ([]listitem.ListItem, error)

	// CreateListItem validates the item and its references (the owning
	// list, the optional category) and creates it with IsDone=false and
	// SortOrder=0.
	// Returns domain.ErrValidation or domain.ErrReference on failure.
	CreateListItem(ctx context.Context, i *listitem.ListItem) (*listitem.ListItem, error)

	// UpdateListItem replaces the mutable fields of an existing item:
	// title, done flag, category, due date, sort order and notes are always
	// overwritten from the given value. TodoListID is immutable.
	// Returns domain.ErrNotFound, domain.ErrValidation or domain.ErrReference.
	UpdateListItem(ctx context.Context, id int64, i *listitem.ListItem) (*listitem.ListItem, error)

	// ToggleListItem flips the done flag of an existing item.
	// Returns domain.ErrNotFound if the item does not exist.
	ToggleListItem(ctx context.Context, id int64) (*listitem.ListItem, error)

	// DeleteListItem deletes an item; its files are removed by cascade.
	// Returns domain.ErrNotFound if the item does not exist.
	DeleteListItem(ctx context.Context, id int64) error
}

// FileUpload is one incoming attachment payload, fully read into memory.
type FileUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// FileService defines the service port for list item attachments.
type FileService interface {
	// ListFiles returns attachment metadata (never payload bytes) for an
	// item, ordered by creation time descending.
	// Returns domain.ErrNotFound if the item does not exist.
	ListFiles(ctx context.Context, listItemID int64) ([]listitem.File, error)

	// UploadFiles stores the non-empty payloads of a batch against an
	// existing item and returns their metadata. Zero-length payloads are
	// skipped; a batch with no non-empty payload is rejected.
	// Returns domain.ErrNotFound or domain.ErrValidation on failure.
	UploadFiles(ctx context.Context, listItemID int64, uploads []FileUpload) ([]listitem.File, error)

	// GetFile returns a stored file including its payload bytes. The file
	// must belong to the given item.
	// Returns domain.ErrNotFound otherwise.
	GetFile(ctx context.Context, listItemID, fileID int64) (*listitem.File, error)

	// DeleteFile removes a stored file belonging to the given item.
	// Returns domain.ErrNotFound otherwise.
	DeleteFile(ctx context.Context, listItemID, fileID int64) error
}
