package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/todo-list-api/internal/domain/person"
)

// ListPersons returns all persons ordered by id ascending.
func (s *Store) ListPersons(ctx context.Context) ([]person.Person, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, full_name, email, created_at FROM persons ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		var p person.Person
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

// InsertPerson persists a new person, assigning its id and creation time.
func (s *Store) InsertPerson(ctx context.Context, p *person.Person) error {
	p.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO persons (full_name, email, created_at) VALUES (?, ?, ?)",
		p.FullName, p.Email, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading person id: %w", err)
	}
	return nil
}

// PersonExists reports whether a person row with the given id exists.
func (s *Store) PersonExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM persons WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking person %d: %w", id, err)
	}
	return count > 0, nil
}
