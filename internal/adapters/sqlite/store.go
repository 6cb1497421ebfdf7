// Package sqlite provides the outbound persistence adapter. It implements
// the repository ports over a single SQLite database using sqlx, with
// schema-level enforcement of the cascade and set-null rules.
package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/todo-list-api/internal/ports"
)

// Compile-time checks that Store satisfies every repository port.
var (
	_ ports.PersonRepository   = (*Store)(nil)
	_ ports.TodoListRepository = (*Store)(nil)
	_ ports.CategoryRepository = (*Store)(nil)
	_ ports.ListItemRepository = (*Store)(nil)
	_ ports.FileRepository     = (*Store)(nil)
	_ ports.HealthChecker      = (*Store)(nil)
)

// Store is the process-wide handle to the SQLite database. It is created
// once at startup and injected into every service; repository methods are
// spread across the *_repo.go files of this package.
type Store struct {
	db *sqlx.DB
}

// New opens (or creates) the SQLite database at dbPath, enables foreign key
// enforcement and WAL mode, and runs any pending schema migrations.
// Foreign keys must be on for the delete cascades and the category set-null
// rule to fire. A busyTimeout of zero leaves the driver default in place.
func New(dbPath string, busyTimeout time.Duration) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn(dbPath, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// SQLite serializes writers anyway, and a single pooled connection keeps
	// an in-memory database alive for the life of the Store.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// dsn builds the driver connection string. Pragmas go in the DSN so they
// apply to every connection the pool opens, not just the first.
func dsn(dbPath string, busyTimeout time.Duration) string {
	params := []string{"_pragma=foreign_keys(1)"}

	if busyTimeout > 0 {
		params = append(params, fmt.Sprintf("_pragma=busy_timeout(%d)", busyTimeout.Milliseconds()))
	}
	// WAL only makes sense for file databases.
	if !strings.Contains(dbPath, ":memory:") {
		params = append(params, "_pragma=journal_mode(WAL)")
	}

	return dbPath + "?" + strings.Join(params, "&")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Store) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. Used as a backstop behind the service-level name pre-check.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
