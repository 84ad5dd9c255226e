package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"tagvault/internal/domain"
	"tagvault/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.TagIndex using SQLite. The database lives
// under the XDG data directory, keyed by a hash of the catalog path,
// so indexing never writes into the image directory itself.
type Index struct {
	db         *sql.DB
	catalogDir string
	dbPath     string
	separator  string
}

// Ensure Index implements TagIndex
var _ ports.TagIndex = (*Index)(nil)

// NewIndex creates a new SQLite tag index. Captions are stored joined
// with the given separator.
func NewIndex(separator string) *Index {
	return &Index{separator: separator}
}

// Open initializes the index for the given catalog directory
func (idx *Index) Open(catalogDir string) error {
	// Expand ~ in path
	if len(catalogDir) > 0 && catalogDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		catalogDir = filepath.Join(home, catalogDir[1:])
	}

	idx.catalogDir = catalogDir
	idx.dbPath = databasePath(catalogDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS images (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			tag_count INTEGER NOT NULL DEFAULT 0,
			caption TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS tags (
			path TEXT NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (path, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);
		CREATE INDEX IF NOT EXISTS idx_tags_path ON tags(path);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// DatabasePath returns the path of the open database file
func (idx *Index) DatabasePath() string {
	return idx.dbPath
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, dirHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'catalog_path_hash'").Scan(&dirHash)

	expectedHash := hashCatalogDir(idx.catalogDir)

	return version != schemaVersion || dirHash != expectedHash
}

// databasePath returns the path for the SQLite database
func databasePath(catalogDir string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash catalog path for unique DB name
	hash := hashCatalogDir(catalogDir)

	return filepath.Join(dataHome, "tagvault", hash+".db")
}

// hashCatalogDir returns a short hash of the catalog directory path
func hashCatalogDir(catalogDir string) string {
	h := sha256.Sum256([]byte(catalogDir))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and catalog path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('catalog_path_hash', ?);
	`, schemaVersion, hashCatalogDir(idx.catalogDir))
	return err
}

// Entry retrieves an indexed record by image path
func (idx *Index) Entry(path string) (*domain.IndexEntry, error) {
	var entry domain.IndexEntry

	err := idx.db.QueryRow(`
		SELECT path, mtime, width, height, tag_count, caption
		FROM images WHERE path = ?
	`, path).Scan(&entry.Path, &entry.Mtime, &entry.Width, &entry.Height,
		&entry.TagCount, &entry.Caption)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// EntryCount returns the number of indexed records
func (idx *Index) EntryCount() (int, error) {
	var count int
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// TagCounts returns the tag frequency table, most frequent first and
// alphabetical within equal counts. A non-positive limit returns all.
func (idx *Index) TagCounts(limit int) ([]domain.TagStat, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := idx.db.Query(`
		SELECT tag, COUNT(*) AS n
		FROM tags
		GROUP BY tag
		ORDER BY n DESC, tag ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.TagStat
	for rows.Next() {
		var s domain.TagStat
		if err := rows.Scan(&s.Tag, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// SearchCaptions returns records whose caption contains the substring,
// case-insensitively, ordered by path. A non-positive limit returns all.
func (idx *Index) SearchCaptions(substring string, limit int) ([]domain.SearchHit, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := idx.db.Query(`
		SELECT path, caption
		FROM images
		WHERE instr(lower(caption), lower(?)) > 0
		ORDER BY path
		LIMIT ?
	`, substring, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []domain.SearchHit
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.Path, &h.Caption); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}

	return hits, rows.Err()
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}
