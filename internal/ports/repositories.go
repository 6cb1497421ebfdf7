package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/todolist"
)

// PersonRepository is the outbound port for person persistence.
type PersonRepository interface {
	// ListPersons returns all persons ordered by id ascending.
	ListPersons(ctx context.Context) ([]person.Person, error)

	// InsertPerson persists a new person and fills the server-assigned ID.
	InsertPerson(ctx context.Context, p *person.Person) error

	// PersonExists reports whether a person row with the given id exists.
	PersonExists(ctx context.Context, id int64) (bool, error)
}

// TodoListRepository is the outbound port for todo list persistence.
type TodoListRepository interface {
	// ListTodoListsByPerson returns a person's lists ordered by id
	// ascending, each with PersonName populated.
	ListTodoListsByPerson(ctx context.Context, personID int64) ([]todolist.TodoList, error)

	// InsertTodoList persists a new list and fills the server-assigned ID.
	InsertTodoList(ctx context.Context, l *todolist.TodoList) error

	// TodoListExists reports whether a list row with the given id exists.
	TodoListExists(ctx context.Context, id int64) (bool, error)

	// DeleteTodoList removes a list; the schema cascades to its items and
	// their files. Returns domain.ErrNotFound when no row matched.
	DeleteTodoList(ctx context.Context, id int64) error
}

// CategoryRepository is the outbound port for category persistence.
type CategoryRepository interface {
	// ListCategories returns all categories ordered by id ascending.
	ListCategories(ctx context.Context) ([]category.Category, error)

	// GetCategory returns one category. Returns domain.ErrNotFound when the
	// row does not exist.
	GetCategory(ctx context.Context, id int64) (*category.Category, error)

	// InsertCategory persists a new category and fills the server-assigned
	// ID. Returns domain.ErrConflict on a duplicate name.
	InsertCategory(ctx context.Context, c *category.Category) error

	// UpdateCategory replaces the name and color of an existing row.
	// Returns domain.ErrNotFound when no row matched, domain.ErrConflict on
	// a duplicate name.
	UpdateCategory(ctx context.Context, c *category.Category) error

	// DeleteCategory removes a category; the schema nulls referencing
	// items' category. Returns domain.ErrNotFound when no row matched.
	DeleteCategory(ctx context.Context, id int64) error

	// CategoryExists reports whether a category row with the given id exists.
	CategoryExists(ctx context.Context, id int64) (bool, error)

	// CategoryNameExists reports whether a category with exactly the given
	// name exists, excluding the row with id excludeID (0 to exclude none).
	CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

// ListItemRepository is the outbound port for list item persistence. Read
// methods populate the denormalized category name/color via a join; file
// metadata is assembled separately by the service from the FileRepository.
type ListItemRepository interface {
	// ListItemsByTodoList returns a list's items ordered by sort order
	// ascending, ties broken by id ascending.
	ListItemsByTodoList(ctx context.Context, todoListID int64) ([]listitem.ListItem, error)

	// GetListItem returns one item. Returns domain.ErrNotFound when the row
	// does not exist.
	GetListItem(ctx context.Context, id int64) (*listitem.ListItem, error)

	// InsertListItem persists a new item and fills the server-assigned ID.
	InsertListItem(ctx context.Context, i *listitem.ListItem) error

	// UpdateListItem replaces the mutable columns of an existing row.
	// Returns domain.ErrNotFound when no row matched.
	UpdateListItem(ctx context.Context, i *listitem.ListItem) error

	// ListItemExists reports whether an item row with the given id exists.
	ListItemExists(ctx context.Context, id int64) (bool, error)

	// DeleteListItem removes an item; the schema cascades to its files.
	// Returns domain.ErrNotFound when no row matched.
	DeleteListItem(ctx context.Context, id int64) error
}

// FileRepository is the outbound port for attachment persistence.
type FileRepository interface {
	// ListFileMeta returns attachment metadata (no payload) for one item,
	// ordered by creation time descending, ties broken by id descending.
	ListFileMeta(ctx context.Context, listItemID int64) ([]listitem.File, error)

	// ListFileMetaByItems returns attachment metadata for a set of items,
	// keyed by item id, each slice ordered as in ListFileMeta.
	ListFileMetaByItems(ctx context.Context, listItemIDs []int64) (map[int64][]listitem.File, error)

	// InsertFiles persists a batch of files in one transaction and fills
	// the server-assigned IDs.
	InsertFiles(ctx context.Context, files []listitem.File) error

	// GetFile returns one file including its payload. The row must belong
	// to the given item; returns domain.ErrNotFound otherwise.
	GetFile(ctx context.Context, listItemID, fileID int64) (*listitem.File, error)

	// DeleteFile removes one file belonging to the given item.
	// Returns domain.ErrNotFound when no row matched.
	DeleteFile(ctx context.Context, listItemID, fileID int64) error
}
