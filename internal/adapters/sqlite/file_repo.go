package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/listitem"
)

// ListFileMeta returns attachment metadata for one item, most recent first.
// Payload bytes are never selected here.
func (s *Store) ListFileMeta(ctx context.Context, listItemID int64) ([]listitem.File, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, list_item_id, file_name, content_type, file_size, created_at
		FROM list_item_files
		WHERE list_item_id = ?
		ORDER BY created_at DESC, id DESC`,
		listItemID)
	if err != nil {
		return nil, fmt.Errorf("querying files for item %d: %w", listItemID, err)
	}
	defer rows.Close()

	var files []listitem.File
	for rows.Next() {
		var f listitem.File
		if err := rows.Scan(&f.ID, &f.ListItemID, &f.FileName, &f.ContentType, &f.Size, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// ListFileMetaByItems returns attachment metadata for a set of items in one
// query, keyed by item id. Used by the by-list read assembly to avoid a
// per-item query fan-out.
func (s *Store) ListFileMetaByItems(ctx context.Context, listItemIDs []int64) (map[int64][]listitem.File, error) {
	result := make(map[int64][]listitem.File, len(listItemIDs))
	if len(listItemIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(listItemIDs)), ",")
	args := make([]any, len(listItemIDs))
	for n, id := range listItemIDs {
		args[n] = id
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, list_item_id, file_name, content_type, file_size, created_at
		FROM list_item_files
		WHERE list_item_id IN (`+placeholders+`)
		ORDER BY created_at DESC, id DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("querying files for %d items: %w", len(listItemIDs), err)
	}
	defer rows.Close()

	for rows.Next() {
		var f listitem.File
		if err := rows.Scan(&f.ID, &f.ListItemID, &f.FileName, &f.ContentType, &f.Size, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		result[f.ListItemID] = append(result[f.ListItemID], f)
	}
	return result, rows.Err()
}

// InsertFiles persists a batch of files in a single transaction, assigning
// ids and creation times. All rows commit or none do.
func (s *Store) InsertFiles(ctx context.Context, files []listitem.File) error {
	if len(files) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO list_item_files
			(list_item_id, file_name, content_type, file_size, file_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing file insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for n := range files {
		f := &files[n]
		f.CreatedAt = now

		res, err := stmt.ExecContext(ctx,
			f.ListItemID, f.FileName, f.ContentType, f.Size, f.Data, f.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting file %q: %w", f.FileName, err)
		}
		f.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading file id: %w", err)
		}
	}

	return tx.Commit()
}

// GetFile returns one file including its payload. The (item, file) pair must
// match; a file id belonging to a different item is not found.
func (s *Store) GetFile(ctx context.Context, listItemID, fileID int64) (*listitem.File, error) {
	var f listitem.File
	err := s.db.QueryRowxContext(ctx, `
		SELECT id, list_item_id, file_name, content_type, file_size, file_data, created_at
		FROM list_item_files
		WHERE id = ? AND list_item_id = ?`,
		fileID, listItemID).
		Scan(&f.ID, &f.ListItemID, &f.FileName, &f.ContentType, &f.Size, &f.Data, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("File not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("getting file %d for item %d: %w", fileID, listItemID, err)
	}
	return &f, nil
}

// DeleteFile removes one file belonging to the given item.
func (s *Store) DeleteFile(ctx context.Context, listItemID, fileID int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM list_item_files WHERE id = ? AND list_item_id = ?",
		fileID, listItemID)
	if err != nil {
		return fmt.Errorf("deleting file %d for item %d: %w", fileID, listItemID, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("File not found.")
	}
	return nil
}
