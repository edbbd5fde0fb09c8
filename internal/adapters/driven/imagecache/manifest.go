package imagecache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// Fetch outcomes recorded in the manifest.
const (
	statusCached = "cached"
	statusFailed = "failed"
)

// Manifest is the cache's SQLite ledger of fetch outcomes. It lets a
// later run skip URLs that recently failed and keeps the hit/miss
// accounting the report shows.
type Manifest struct {
	mu sync.Mutex
	db *sql.DB
}

// OpenManifest opens (or creates) the manifest database at path.
func OpenManifest(path string) (*Manifest, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS fetches (
			url        TEXT    NOT NULL,
			width      INTEGER NOT NULL,
			height     INTEGER NOT NULL,
			path       TEXT    NOT NULL,
			status     TEXT    NOT NULL,
			fetched_at TEXT    NOT NULL,
			PRIMARY KEY (url, width, height)
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}

	return &Manifest{db: db}, nil
}

// Record upserts the outcome of one fetch.
func (m *Manifest) Record(url string, size domain.ImageSize, path, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.Exec(`
		INSERT OR REPLACE INTO fetches (url, width, height, path, status, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		url, size.Width, size.Height, path, status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	return nil
}

// Lookup returns the recorded outcome for a (url, size), if any.
func (m *Manifest) Lookup(url string, size domain.ImageSize) (status, path string, fetchedAt time.Time, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var at string
	err := m.db.QueryRow(`
		SELECT status, path, fetched_at FROM fetches
		WHERE url = ? AND width = ? AND height = ?`,
		url, size.Width, size.Height).Scan(&status, &path, &at)
	if err != nil {
		return "", "", time.Time{}, false
	}
	fetchedAt, _ = time.Parse(time.RFC3339, at)
	return status, path, fetchedAt, true
}

// Close closes the database.
func (m *Manifest) Close() error {
	return m.db.Close()
}
