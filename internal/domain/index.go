package domain

import (
	"slices"
	"strings"
	"time"
)

// IndexEntry is one indexed image record as stored in the persistent
// tag index.
type IndexEntry struct {
	Path     string // Image path (primary key)
	Mtime    int64  // Sidecar mtime in Unix seconds, for incremental sync
	Width    int    // Zero when dimensions are unknown
	Height   int
	TagCount int
	Caption  string // Tags joined with the catalog separator
}

// TagStat is one row of the catalog-wide tag frequency table.
type TagStat struct {
	Tag   string
	Count int
}

// SortTagStats orders a frequency table most frequent first, and
// alphabetically within equal counts.
func SortTagStats(stats []TagStat) {
	slices.SortFunc(stats, func(a, b TagStat) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
}

// SearchHit is one caption-search result.
type SearchHit struct {
	Path    string
	Caption string
}

// SyncStats holds statistics from an index sync operation.
type SyncStats struct {
	EntriesAdded   int
	EntriesUpdated int
	EntriesDeleted int
	FilesScanned   int
	Duration       time.Duration
}
