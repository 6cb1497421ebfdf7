package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain"
	"github.com/jsamuelsen11/todo-list-api/internal/domain/category"
)

// ListCategories returns all categories ordered by id ascending.
func (s *Store) ListCategories(ctx context.Context) ([]category.Category, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, color_hex, created_at FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ColorHex, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// GetCategory returns one category by id.
func (s *Store) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	var c category.Category
	err := s.db.QueryRowxContext(ctx,
		"SELECT id, name, color_hex, created_at FROM categories WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.ColorHex, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("Category %d not found.", id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	return &c, nil
}

// InsertCategory persists a new category, assigning its id and creation
// time. The UNIQUE index on name backs the service-level duplicate check.
func (s *Store) InsertCategory(ctx context.Context, c *category.Category) error {
	c.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, color_hex, created_at) VALUES (?, ?, ?)",
		c.Name, c.ColorHex, c.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.Conflictf("Category name %q already exists.", c.Name)
	}
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}

	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading category id: %w", err)
	}
	return nil
}

// UpdateCategory replaces the name and color of an existing row.
func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, color_hex = ? WHERE id = ?",
		c.Name, c.ColorHex, c.ID,
	)
	if isUniqueViolation(err) {
		return domain.Conflictf("Category name %q already exists.", c.Name)
	}
	if err != nil {
		return fmt.Errorf("updating category %d: %w", c.ID, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("Category %d not found.", c.ID)
	}
	return nil
}

// DeleteCategory removes a category. Items referencing it keep existing;
// the schema nulls their category_id.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NotFoundf("Category %d not found.", id)
	}
	return nil
}

// CategoryExists reports whether a category row with the given id exists.
func (s *Store) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM categories WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking category %d: %w", id, err)
	}
	return count > 0, nil
}

// CategoryNameExists reports whether a category with exactly the given name
// exists. Comparison is case-sensitive, matching the unique index.
func (s *Store) CategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM categories WHERE name = ? AND id != ?", name, excludeID)
	if err != nil {
		return false, fmt.Errorf("checking category name %q: %w", name, err)
	}
	return count > 0, nil
}
