package ports

import "tagvault/internal/domain"

// TagIndex provides persistent, queryable access to the catalog's tag
// data without re-reading sidecar files. All query operations should be
// O(log n) or better via database indexes.
type TagIndex interface {
	// Lifecycle
	Open(catalogDir string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental(files []domain.SourceFile) (*domain.SyncStats, error)
	SyncFull(files []domain.SourceFile) (*domain.SyncStats, error)

	// Entry queries
	Entry(path string) (*domain.IndexEntry, error)
	EntryCount() (int, error)

	// Tag queries
	TagCounts(limit int) ([]domain.TagStat, error)
	SearchCaptions(substring string, limit int) ([]domain.SearchHit, error)

	// Batch updates (for write-through after mutations)
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic index updates
type IndexTx interface {
	// Entry operations
	UpsertEntry(entry *domain.IndexEntry, tags []string) error
	DeleteEntry(path string) error

	// Transaction control
	Commit() error
	Rollback() error
}
