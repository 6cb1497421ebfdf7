package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time check that ListItemService implements ports.ListItemService.
var _ ports.ListItemService = (*ListItemService)(nil)

// ListItemService implements ports.ListItemService. Responses are assembled
// read-side: the category name/color comes from the repository's join and
// attachment metadata is fetched explicitly, so there is no hidden per-item
// query fan-out.
type ListItemService struct {
	items      ports.ListItemRepository
	lists      ports.TodoListRepository
	categories ports.CategoryRepository
	files      ports.FileRepository
	logger     *slog.Logger
}

// NewListItemService creates a ListItemService.
func NewListItemService(
	items ports.ListItemRepository,
	lists ports.TodoListRepository,
	categories ports.CategoryRepository,
	files ports.FileRepository,
	logger *slog.Logger,
) *ListItemService {
	return &ListItemService{
		items:      items,
		lists:      lists,
		categories: categories,
		files:      files,
		logger:     logger,
	}
}

// ListByTodoList returns a list's items in display order (sort order
// ascending, id as tie-break), each with category info and file metadata.
func (s *ListItemService) ListByTodoList(ctx context.Context, todoListID int64) ([]listitem.ListItem, error) {
	if todoListID <= 0 {
		return nil, domain.Validationf("TodoList id must be a positive number.")
	}

	exists, err := s.lists.TodoListExists(ctx, todoListID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check todo list",
			slog.String("operation", "ListByTodoList"),
			slog.Int64("todo_list_id", todoListID),
			slog.Any("error", err),
		)
		return nil, err
	}
	if !exists {
		return nil, domain.NotFoundf("TodoList %d not found.", todoListID)
	}

	items, err := s.items.ListItemsByTodoList(ctx, todoListID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "ListByTodoList"),
			slog.Int64("todo_list_id", todoListID),
			slog.Any("error", err),
		)
		return nil, err
	}

	// One batched metadata query for the whole listing.
	ids := make([]int64, len(items))
	for n := range items {
		ids[n] = items[n].ID
	}
	fileMeta, err := s.files.ListFileMetaByItems(ctx, ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list item files",
			slog.String("operation", "ListByTodoList"),
			slog.Int64("todo_list_id", todoListID),
			slog.Any("error", err),
		)
		return nil, err
	}
	for n := range items {
		items[n].Files = fileMeta[items[n].ID]
	}

	return items, nil
}

// CreateListItem validates the item and its references and creates it. New
// items always start not-done at sort order zero.
func (s *ListItemService) CreateListItem(ctx context.Context, i *listitem.ListItem) (*listitem.ListItem, error) {
	i.Title = strings.TrimSpace(i.Title)
	i.IsDone = false
	i.SortOrder = 0

	if err := i.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, i); err != nil {
		return nil, err
	}

	if err := s.items.InsertListItem(ctx, i); err != nil {
		s.logger.ErrorContext(ctx, "failed to create list item",
			slog.String("operation", "CreateListItem"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "list item created",
		slog.Int64("list_item_id", i.ID),
		slog.Int64("todo_list_id", i.TodoListID),
	)
	return s.assemble(ctx, i.ID)
}

// UpdateListItem replaces the mutable fields of an existing item. Every
// mutable field is overwritten from the payload, matching the whole-field
// update contract; the owning list never changes.
func (s *ListItemService) UpdateListItem(ctx context.Context, id int64, i *listitem.ListItem) (*listitem.ListItem, error) {
	if id <= 0 {
		return nil, domain.Validationf("ListItem id must be a positive number.")
	}

	existing, err := s.items.GetListItem(ctx, id)
	if err != nil {
		return nil, err
	}

	i.ID = id
	i.TodoListID = existing.TodoListID
	i.Title = strings.TrimSpace(i.Title)

	if err := i.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, i.CategoryID); err != nil {
		return nil, err
	}

	if err := s.items.UpdateListItem(ctx, i); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to update list item",
				slog.String("operation", "UpdateListItem"),
				slog.Int64("list_item_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	return s.assemble(ctx, id)
}

// ToggleListItem flips the done flag of an existing item.
func (s *ListItemService) ToggleListItem(ctx context.Context, id int64) (*listitem.ListItem, error) {
	if id <= 0 {
		return nil, domain.Validationf("ListItem id must be a positive number.")
	}

	existing, err := s.items.GetListItem(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.IsDone = !existing.IsDone
	if err := s.items.UpdateListItem(ctx, existing); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to toggle list item",
				slog.String("operation", "ToggleListItem"),
				slog.Int64("list_item_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "list item toggled",
		slog.Int64("list_item_id", id),
		slog.Bool("is_done", existing.IsDone),
	)
	return s.assemble(ctx, id)
}

// DeleteListItem deletes an item; its files go with it by cascade.
func (s *ListItemService) DeleteListItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Validationf("ListItem id must be a positive number.")
	}

	if err := s.items.DeleteListItem(ctx, id); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "failed to delete list item",
				slog.String("operation", "DeleteListItem"),
				slog.Int64("list_item_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.InfoContext(ctx, "list item deleted", slog.Int64("list_item_id", id))
	return nil
}

// checkReferences verifies the owning list and the optional category exist.
// Called on create only; updates keep the list immutable.
func (s *ListItemService) checkReferences(ctx context.Context, i *listitem.ListItem) error {
	exists, err := s.lists.TodoListExists(ctx, i.TodoListID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check todo list",
			slog.String("operation", "CreateListItem"),
			slog.Int64("todo_list_id", i.TodoListID),
			slog.Any("error", err),
		)
		return err
	}
	if !exists {
		return domain.Referencef("TodoList %d does not exist.", i.TodoListID)
	}

	return s.checkCategory(ctx, i.CategoryID)
}

// checkCategory verifies the referenced category exists when one is set.
func (s *ListItemService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	exists, err := s.categories.CategoryExists(ctx, *categoryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check category",
			slog.Int64("category_id", *categoryID),
			slog.Any("error", err),
		)
		return err
	}
	if !exists {
		return domain.Referencef("Category %d does not exist.", *categoryID)
	}
	return nil
}

// assemble re-reads an item with its category join and attaches file
// metadata, producing the full response representation.
func (s *ListItemService) assemble(ctx context.Context, id int64) (*listitem.ListItem, error) {
	i, err := s.items.GetListItem(ctx, id)
	if err != nil {
		return nil, err
	}

	files, err := s.files.ListFileMeta(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list item files",
			slog.Int64("list_item_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	i.Files = files

	return i, nil
}
