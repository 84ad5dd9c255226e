package sqlite

import (
	"database/sql"

	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertEntry inserts or updates one record and its tag rows
func (t *indexTx) UpsertEntry(entry *domain.IndexEntry, tags []string) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO images (path, mtime, width, height, tag_count, caption)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.Path, entry.Mtime, entry.Width, entry.Height, entry.TagCount, entry.Caption)
	if err != nil {
		return err
	}

	if _, err := t.tx.Exec(`DELETE FROM tags WHERE path = ?`, entry.Path); err != nil {
		return err
	}

	for i, tag := range tags {
		_, err := t.tx.Exec(`
			INSERT INTO tags (path, position, tag) VALUES (?, ?, ?)
		`, entry.Path, i, tag)
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteEntry removes a record and its tag rows by path
func (t *indexTx) DeleteEntry(path string) error {
	if _, err := t.tx.Exec(`DELETE FROM tags WHERE path = ?`, path); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM images WHERE path = ?`, path)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
