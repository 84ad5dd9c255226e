package application

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

// Catalog is the tag catalog engine: the ordered record store, the
// undo/redo history, and the bulk mutation operations, persisting every
// change through the caption store as it happens.
//
// A Catalog has exactly one mutator at a time by construction; callers
// that share one across goroutines must serialize access themselves.
type Catalog struct {
	images    []*domain.Image
	history   *domain.History
	store     ports.CaptionStore
	filter    ports.Filter
	confirmer ports.Confirmer
	notify    *Broadcaster
	separator string
	rng       *rand.Rand

	// revision changes whenever a stack is pushed, popped, or cleared.
	// Pending restores remember it so a restore prepared against an
	// older stack shape cannot apply.
	revision uint64
}

// NewCatalog creates an empty catalog persisting through store. Tags
// are joined and split with the separator.
func NewCatalog(store ports.CaptionStore, separator string) *Catalog {
	return &Catalog{
		history:   &domain.History{},
		store:     store,
		notify:    &Broadcaster{},
		separator: separator,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetFilter installs the external record filter consulted by
// filtered-scope operations. A nil filter makes every record visible.
func (c *Catalog) SetFilter(f ports.Filter) {
	c.filter = f
}

// SetConfirmer installs the collaborator asked before destructive
// restores. A nil confirmer means restores proceed without asking.
func (c *Catalog) SetConfirmer(conf ports.Confirmer) {
	c.confirmer = conf
}

// SetRand replaces the shuffle randomness source. Tests and callers
// that need reproducible shuffles inject a seeded source here.
func (c *Catalog) SetRand(rng *rand.Rand) {
	c.rng = rng
}

// Subscribe registers a notifier for catalog change notifications.
func (c *Catalog) Subscribe(n ports.Notifier) {
	c.notify.Subscribe(n)
}

// Load replaces the catalog contents wholesale. Records are built from
// the source files, sorted by path, and both history stacks are
// cleared. The record count is fixed until the next Load.
func (c *Catalog) Load(files []domain.SourceFile) {
	images := make([]*domain.Image, 0, len(files))
	for _, f := range files {
		images = append(images, &domain.Image{
			Path:       f.Path,
			Dimensions: f.Dimensions,
			Tags:       slices.Clone(f.Tags),
		})
	}
	domain.SortImages(images)

	c.images = images
	c.history.Clear()
	c.revision++
	c.notify.HistoryChanged()
	c.notify.Reset()
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.images)
}

// ImageAt returns the record at the given position, or nil when the
// position is out of range.
func (c *Catalog) ImageAt(position int) *domain.Image {
	if position < 0 || position >= len(c.images) {
		return nil
	}
	return c.images[position]
}

// Images returns the records in catalog order. The slice is the
// catalog's own; callers must treat it as read-only.
func (c *Catalog) Images() []*domain.Image {
	return c.images
}

// Separator returns the configured tag separator.
func (c *Catalog) Separator() string {
	return c.separator
}

// UndoDepth returns the number of undoable operations.
func (c *Catalog) UndoDepth() int {
	return c.history.UndoLen()
}

// RedoDepth returns the number of redoable operations.
func (c *Catalog) RedoDepth() int {
	return c.history.RedoLen()
}

// NextUndo returns the action label that an undo would revert, if any.
func (c *Catalog) NextUndo() (string, bool) {
	if item := c.history.PeekUndo(); item != nil {
		return item.Action, true
	}
	return "", false
}

// NextRedo returns the action label that a redo would reapply, if any.
func (c *Catalog) NextRedo() (string, bool) {
	if item := c.history.PeekRedo(); item != nil {
		return item.Action, true
	}
	return "", false
}

// snapshot captures the current full tag state onto the undo stack.
// Every mutation calls it before transforming anything, so undo always
// reverts to the state just before the operation, whether or not the
// operation ends up changing records.
func (c *Catalog) snapshot(action string, needsConfirm bool) {
	c.history.Record(&domain.HistoryItem{
		Action:       action,
		Tags:         domain.SnapshotTags(c.images),
		NeedsConfirm: needsConfirm,
	})
	c.revision++
	c.notify.HistoryChanged()
}

// persist writes one record's tags through the caption store. Failures
// are collected on the change rather than aborting the batch; memory
// stays authoritative and diverges from disk until the next successful
// write.
func (c *Catalog) persist(img *domain.Image, ch *Change) {
	if err := c.store.WriteTags(img.Path, img.Tags); err != nil {
		ch.Errors = append(ch.Errors, &WriteError{Path: img.Path, Err: err})
	}
}

// visible reports whether the record participates in a filtered-scope
// operation. Without an installed filter every record is visible.
func (c *Catalog) visible(img *domain.Image) bool {
	return c.filter == nil || c.filter.Visible(img)
}

// finish emits the changed-range notification for a completed
// mutation. Only the envelope is reported; positions inside it that
// did not change are refreshed anyway by receivers.
func (c *Catalog) finish(ch *Change) {
	if ch.Changed > 0 {
		c.notify.RangeChanged(ch.First, ch.Last)
	}
}

// PendingRestore is a prepared undo or redo waiting on confirmation.
// Exactly one of Resolve(true) or Resolve(false) completes it; Resolve
// may be called from a later event-loop turn, so a non-blocking UI can
// show its own prompt in between.
type PendingRestore struct {
	catalog  *Catalog
	item     *domain.HistoryItem
	undo     bool
	revision uint64
	resolved bool

	// Title is "Undo" or "Redo"; Question is the full prompt text,
	// like `Undo "Sort Tags"?`.
	Title    string
	Question string
}

// NeedsConfirm reports whether the prepared restore wants a
// confirmation prompt before applying.
func (p *PendingRestore) NeedsConfirm() bool {
	return p.item.NeedsConfirm
}

// Action returns the label of the operation being restored.
func (p *PendingRestore) Action() string {
	return p.item.Action
}

// BeginUndo prepares an undo of the most recent operation. It returns
// nil when there is nothing to undo. The stacks are not touched until
// the pending restore is resolved with approval.
func (c *Catalog) BeginUndo() *PendingRestore {
	return c.beginRestore(true)
}

// BeginRedo prepares a redo of the most recently undone operation. It
// returns nil when there is nothing to redo.
func (c *Catalog) BeginRedo() *PendingRestore {
	return c.beginRestore(false)
}

func (c *Catalog) beginRestore(undo bool) *PendingRestore {
	var item *domain.HistoryItem
	if undo {
		item = c.history.PeekUndo()
	} else {
		item = c.history.PeekRedo()
	}
	if item == nil {
		return nil
	}

	title := "Redo"
	if undo {
		title = "Undo"
	}
	return &PendingRestore{
		catalog:  c,
		item:     item,
		undo:     undo,
		revision: c.revision,
		Title:    title,
		Question: fmt.Sprintf("%s %q?", title, item.Action),
	}
}

// Resolve completes the pending restore. Approved false aborts: stacks
// and tags stay exactly as they were. Approved true pops the snapshot,
// pushes the current state onto the opposite stack under the same
// label, restores every record whose tags differ, persists each
// restored record, and notifies the changed range.
func (p *PendingRestore) Resolve(approved bool) (Change, error) {
	c := p.catalog
	if p.resolved || c.revision != p.revision {
		return Change{}, ErrStaleRestore
	}
	p.resolved = true

	ch := Change{Action: p.item.Action, First: -1, Last: -1}
	if !approved {
		return ch, nil
	}

	// Capture the current state before restoring so the restore can
	// itself be reverted from the opposite stack.
	current := &domain.HistoryItem{
		Action:       p.item.Action,
		Tags:         domain.SnapshotTags(c.images),
		NeedsConfirm: p.item.NeedsConfirm,
	}
	if p.undo {
		c.history.PopUndo()
		c.history.PushRedo(current)
	} else {
		c.history.PopRedo()
		c.history.PushUndo(current)
	}
	c.revision++

	for pos, img := range c.images {
		if pos >= len(p.item.Tags) {
			break
		}
		restored := p.item.Tags[pos]
		if slices.Equal(img.Tags, restored) {
			continue
		}
		img.Tags = restored
		ch.mark(pos)
		c.persist(img, &ch)
	}
	ch.Applied = true

	c.finish(&ch)
	c.notify.HistoryChanged()
	return ch, nil
}

// Undo reverts the most recent operation, asking the installed
// confirmer first when the operation was flagged destructive. A
// declined prompt leaves every record and both stacks untouched.
func (c *Catalog) Undo() (Change, error) {
	p := c.BeginUndo()
	if p == nil {
		return Change{}, ErrNothingToUndo
	}
	return c.resolveWithConfirmer(p)
}

// Redo reapplies the most recently undone operation, with the same
// confirmation behavior as Undo.
func (c *Catalog) Redo() (Change, error) {
	p := c.BeginRedo()
	if p == nil {
		return Change{}, ErrNothingToRedo
	}
	return c.resolveWithConfirmer(p)
}

func (c *Catalog) resolveWithConfirmer(p *PendingRestore) (Change, error) {
	if !p.NeedsConfirm() || c.confirmer == nil {
		return p.Resolve(true)
	}
	approved, err := c.confirmer.Confirm(p.Title, p.Question)
	if err != nil {
		p.Resolve(false)
		return Change{}, err
	}
	return p.Resolve(approved)
}
