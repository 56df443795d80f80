package repositories

import (
	"database/sql"
	"fmt"
)

// Namespace is the prefix under which all wavecli flags are stored, mirroring
// the web client's localStorage keys.
const Namespace = "onewave_"

// Well-known flag keys.
const (
	KeyAuthToken  = Namespace + "auth_token"
	KeyAuthBypass = Namespace + "auth_bypass"
	KeyUserName   = Namespace + "user_name"
	KeyUserEmail  = Namespace + "user_email"
)

// KVRepository persists the small set of namespaced key/value flags.
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository creates a new KVRepository with the given database connection
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves a flag value, returning "" when the key is absent.
func (r *KVRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM flags WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read flag %s: %w", key, err)
	}
	return value, nil
}

// Set stores a flag value, replacing any previous one.
func (r *KVRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		"INSERT INTO flags (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write flag %s: %w", key, err)
	}
	return nil
}

// Delete removes a single flag. Missing keys are not an error.
func (r *KVRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM flags WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete flag %s: %w", key, err)
	}
	return nil
}

// ClearNamespace removes every flag under [Namespace] in one transaction,
// the sign-out contract: credentials and derived identity go together.
func (r *KVRepository) ClearNamespace() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM flags WHERE key LIKE ?", Namespace+"%"); err != nil {
		return fmt.Errorf("failed to clear flags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}
