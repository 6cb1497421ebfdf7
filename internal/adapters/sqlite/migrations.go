package sqlite

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// Deletion policy lives in the schema: persons cascade to lists, lists to
// items, items to files; deleting a category nulls the items' category_id.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS persons (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name  TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS todo_lists (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	person_id  INTEGER NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	color_hex  TEXT,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS list_items (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	todo_list_id INTEGER NOT NULL REFERENCES todo_lists(id) ON DELETE CASCADE,
	category_id  INTEGER REFERENCES categories(id) ON DELETE SET NULL,
	title        TEXT NOT NULL,
	is_done      INTEGER NOT NULL DEFAULT 0 CHECK(is_done IN (0, 1)),
	due_at       DATETIME,
	sort_order   INTEGER NOT NULL DEFAULT 0,
	notes        TEXT,
	created_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS list_item_files (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	list_item_id INTEGER NOT NULL REFERENCES list_items(id) ON DELETE CASCADE,
	file_name    TEXT NOT NULL,
	content_type TEXT NOT NULL DEFAULT '',
	file_size    INTEGER NOT NULL,
	file_data    BLOB NOT NULL,
	created_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todo_lists_person_id ON todo_lists(person_id);
CREATE INDEX IF NOT EXISTS idx_list_items_list_sort ON list_items(todo_list_id, sort_order);
CREATE INDEX IF NOT EXISTS idx_list_items_category_id ON list_items(category_id);
CREATE INDEX IF NOT EXISTS idx_list_item_files_item_id ON list_item_files(list_item_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
