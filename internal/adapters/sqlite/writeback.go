package sqlite

import (
	"os"

	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

// catalogSource is the slice of the catalog the follower needs: record
// access by position and the caption separator.
type catalogSource interface {
	ImageAt(position int) *domain.Image
	Separator() string
}

// Follower implements ports.Notifier by mirroring catalog mutations
// into the index, so queries keep seeing fresh data without a rescan.
// Notifications carry no error channel, so index write failures are
// absorbed; the next sync reconciles.
type Follower struct {
	idx         *Index
	catalog     catalogSource
	sidecarPath func(imagePath string) string
}

// Ensure Follower implements Notifier
var _ ports.Notifier = (*Follower)(nil)

// NewFollower creates a notifier that keeps idx in step with catalog.
// sidecarPath resolves an image path to its caption file for mtime
// stamping; it may be nil.
func NewFollower(idx *Index, catalog catalogSource, sidecarPath func(string) string) *Follower {
	return &Follower{idx: idx, catalog: catalog, sidecarPath: sidecarPath}
}

// RangeChanged upserts every record in the inclusive position range.
func (f *Follower) RangeChanged(first, last int) {
	tx, err := f.idx.BeginTx()
	if err != nil {
		return
	}

	for pos := first; pos <= last; pos++ {
		img := f.catalog.ImageAt(pos)
		if img == nil {
			continue
		}
		if err := tx.UpsertEntry(f.entryFor(img), img.Tags); err != nil {
			tx.Rollback()
			return
		}
	}

	tx.Commit()
}

// Reset is a no-op; the load path runs its own sync.
func (f *Follower) Reset() {}

// HistoryChanged is a no-op; stack depths are not indexed.
func (f *Follower) HistoryChanged() {}

// entryFor builds the index row for one live catalog record
func (f *Follower) entryFor(img *domain.Image) *domain.IndexEntry {
	entry := &domain.IndexEntry{
		Path:     img.Path,
		TagCount: len(img.Tags),
		Caption:  img.Caption(f.catalog.Separator()),
	}
	if img.Dimensions != nil {
		entry.Width = img.Dimensions.Width
		entry.Height = img.Dimensions.Height
	}
	if f.sidecarPath != nil {
		if info, err := os.Stat(f.sidecarPath(img.Path)); err == nil {
			entry.Mtime = info.ModTime().Unix()
		}
	}
	return entry
}
