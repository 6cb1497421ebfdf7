package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
)

// listItemColumns is the shared SELECT list for item reads. The category
// join supplies the denormalized name/color in one query instead of a
// per-item lookup.
const listItemColumns = `
	i.id, i.todo_list_id, i.category_id, i.title, i.is_done,
	i.due_at, i.sort_order, i.notes, i.created_at,
	c.name, c.color_hex`

func scanListItem(rows *sqlx.Rows) (listitem.ListItem, error) {
	var i listitem.ListItem
	err := rows.Scan(
		&i.ID, &i.TodoListID, &i.CategoryID, &i.Title, &i.IsDone,
		&i.DueAt, &i.SortOrder, &i.Notes, &i.CreatedAt,
		&i.CategoryName, &i.CategoryColorHex,
	)
	return i, err
}

// ListItemsByTodoList returns a list's items ordered by sort order
// ascending; items sharing a sort order come back in id order.
func (s *Store) ListItemsByTodoList(ctx context.Context, todoListID int64) ([]listitem.ListItem, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT `+listItemColumns+`
		FROM list_items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.todo_list_id = ?
		ORDER BY i.sort_order, i.id`,
		todoListID)
	if err != nil {
		return nil, fmt.Errorf("querying items for list %d: %w", todoListID, err)
	}
	defer rows.Close()

	var items []listitem.ListItem
	for rows.Next() {
		i, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning list item row: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// GetListItem returns one item by id with category name/color populated.
func (s *Store) GetListItem(ctx context.Context, id int64) (*listitem.ListItem, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT `+listItemColumns+`
		FROM list_items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.id = ?`,
		id)
	if err != nil {
		return nil, fmt.Errorf("getting list item %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("getting list item %d: %w", id, err)
		}
		return nil, domain.NotFoundf("ListItem %d not found.", id)
	}

	i, err := scanListItem(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning list item row: %w", err)
	}
	return &i, rows.Err()
}

// InsertListItem persists a new item, assigning its id and creation time.
func (s *Store) InsertListItem(ctx context.Context, i *listitem.ListItem) error {
	i.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO list_items
			(todo_list_id, category_id, title, is_done, due_at, sort_order, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.TodoListID, i.CategoryID, i.Title, i.IsDone, i.DueAt, i.SortOrder, i.Notes, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting list item: %w", err)
	}

	i.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading list item id: %w", err)
	}
	return nil
}

// UpdateListItem replaces the mutable columns of an existing row. The owning
// list is immutable and never part of the SET clause.
func (s *Store) UpdateListItem(ctx context.Context, i *listitem.ListItem) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE list_items
		SET title = ?, is_done = ?, category_id = ?, due_at = ?, sort_order = ?, notes = ?
		WHERE id = ?`,
		i.Title, i.IsDone, i.CategoryID, i.DueAt, i.SortOrder, i.Notes, i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating list item %d: %w", i.ID, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("ListItem %d not found.", i.ID)
	}
	return nil
}

// ListItemExists reports whether an item row with the given id exists.
func (s *Store) ListItemExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM list_items WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking list item %d: %w", id, err)
	}
	return count > 0, nil
}

// DeleteListItem removes an item. Its files go with it via the schema's
// delete cascade.
func (s *Store) DeleteListItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM list_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting list item %d: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("ListItem %d not found.", id)
	}
	return nil
}
