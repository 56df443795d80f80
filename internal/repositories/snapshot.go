package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/onewave/wavecli/internal/models"
)

// Snapshot names.
const (
	SnapshotWords  = "words"
	SnapshotTracks = "tracks"
)

// SnapshotRepository caches the last successfully loaded record lists so the
// client has something to render before (or without) a network round trip.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveWords replaces the cached word list.
func (r *SnapshotRepository) SaveWords(words []models.WordRecord) error {
	return r.save(SnapshotWords, words)
}

// SaveTracks replaces the cached track list.
func (r *SnapshotRepository) SaveTracks(tracks []models.TrackRecord) error {
	return r.save(SnapshotTracks, tracks)
}

// Words returns the cached word list, or nil when no snapshot exists.
func (r *SnapshotRepository) Words() ([]models.WordRecord, error) {
	var words []models.WordRecord
	ok, err := r.load(SnapshotWords, &words)
	if err != nil || !ok {
		return nil, err
	}
	return words, nil
}

// Tracks returns the cached track list, or nil when no snapshot exists.
func (r *SnapshotRepository) Tracks() ([]models.TrackRecord, error) {
	var tracks []models.TrackRecord
	ok, err := r.load(SnapshotTracks, &tracks)
	if err != nil || !ok {
		return nil, err
	}
	return tracks, nil
}

func (r *SnapshotRepository) save(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", name, err)
	}

	_, err = r.db.Exec(
		"INSERT INTO snapshots (name, payload) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = CURRENT_TIMESTAMP",
		name, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", name, err)
	}
	return nil
}

func (r *SnapshotRepository) load(name string, v any) (bool, error) {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM snapshots WHERE name = ?", name).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s snapshot: %w", name, err)
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("failed to decode %s snapshot: %w", name, err)
	}
	return true, nil
}
