// package repositories provides SQLite persistence for the client-side state.
//
// Two stores live here: the namespaced key/value flags that stand in for the
// web client's localStorage (token, bypass flag, derived identity fields) and
// the record snapshots cached after a successful bulk load.
package repositories

import (
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so opening a database is always safe.
const schema = `
CREATE TABLE IF NOT EXISTS flags (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS snapshots (
	name TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Setup creates the client-side tables if they do not exist.
func Setup(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
