package sqlite

import (
	"time"

	"tagvault/internal/domain"
)

// SyncFull performs a complete rebuild of the index from the scanned
// source files.
func (idx *Index) SyncFull(files []domain.SourceFile) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{FilesScanned: len(files)}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}

	// Clear existing data
	itx := tx.(*indexTx)
	if _, err := itx.tx.Exec(`DELETE FROM tags`); err != nil {
		tx.Rollback()
		return nil, err
	}
	if _, err := itx.tx.Exec(`DELETE FROM images`); err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, f := range files {
		if err := tx.UpsertEntry(idx.entryFor(f), f.Tags); err != nil {
			tx.Rollback()
			return nil, err
		}
		stats.EntriesAdded++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental reconciles the index with the scanned source files,
// touching only records whose sidecar mtime changed. Records no longer
// on disk are removed.
func (idx *Index) SyncIncremental(files []domain.SourceFile) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{FilesScanned: len(files)}

	// Load existing paths and mtimes to detect changes and deletions
	existing := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM images`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			rows.Close()
			return nil, err
		}
		existing[path] = mtime
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.Path] = true

		mtime, known := existing[f.Path]
		if known && mtime == f.ModTime {
			continue
		}

		if err := tx.UpsertEntry(idx.entryFor(f), f.Tags); err != nil {
			tx.Rollback()
			return nil, err
		}
		if known {
			stats.EntriesUpdated++
		} else {
			stats.EntriesAdded++
		}
	}

	// Delete entries that no longer exist
	for path := range existing {
		if seen[path] {
			continue
		}
		if err := tx.DeleteEntry(path); err != nil {
			tx.Rollback()
			return nil, err
		}
		stats.EntriesDeleted++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	// Update last sync time
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// entryFor builds the index row for one scanned source file
func (idx *Index) entryFor(f domain.SourceFile) *domain.IndexEntry {
	entry := &domain.IndexEntry{
		Path:     f.Path,
		Mtime:    f.ModTime,
		TagCount: len(f.Tags),
		Caption:  domain.JoinCaption(f.Tags, idx.separator),
	}
	if f.Dimensions != nil {
		entry.Width = f.Dimensions.Width
		entry.Height = f.Dimensions.Height
	}
	return entry
}
