package domain

// UndoStackSize bounds the undo stack. When a new snapshot would exceed
// it, the oldest entry is evicted.
const UndoStackSize = 32

// HistoryItem is one catalog-wide snapshot: the action label shown in
// undo prompts and one deep-copied tag list per record, in record order.
type HistoryItem struct {
	Action       string
	Tags         [][]string
	NeedsConfirm bool
}

// SnapshotTags deep-copies every record's tag list in record order.
func SnapshotTags(images []*Image) [][]string {
	tags := make([][]string, len(images))
	for i, img := range images {
		tags[i] = img.CloneTags()
	}
	return tags
}

// History holds the undo and redo stacks. Undo is bounded by
// UndoStackSize and evicts its oldest entry when full; redo is
// unbounded. The zero value is ready to use.
type History struct {
	undo []*HistoryItem
	redo []*HistoryItem
}

// Record pushes a snapshot onto the undo stack, evicting the oldest
// entry when the stack is full, and clears the redo stack. This is the
// entry point for new mutations; once a fresh snapshot lands, the
// previously undone states are no longer reachable.
func (h *History) Record(item *HistoryItem) {
	h.PushUndo(item)
	h.redo = nil
}

// PushUndo pushes onto the undo stack, evicting the oldest entry when
// the stack is full. The redo stack is left alone, so redo uses this to
// re-enable undo of the state it just reapplied.
func (h *History) PushUndo(item *HistoryItem) {
	if len(h.undo) >= UndoStackSize {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, item)
}

// PushRedo pushes onto the redo stack. Redo has no size bound.
func (h *History) PushRedo(item *HistoryItem) {
	h.redo = append(h.redo, item)
}

// PeekUndo returns the most recent undo entry without removing it, or
// nil when the stack is empty.
func (h *History) PeekUndo() *HistoryItem {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// PeekRedo returns the most recent redo entry without removing it, or
// nil when the stack is empty.
func (h *History) PeekRedo() *HistoryItem {
	if len(h.redo) == 0 {
		return nil
	}
	return h.redo[len(h.redo)-1]
}

// PopUndo removes and returns the most recent undo entry, or nil when
// the stack is empty.
func (h *History) PopUndo() *HistoryItem {
	if len(h.undo) == 0 {
		return nil
	}
	item := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return item
}

// PopRedo removes and returns the most recent redo entry, or nil when
// the stack is empty.
func (h *History) PopRedo() *HistoryItem {
	if len(h.redo) == 0 {
		return nil
	}
	item := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return item
}

// Clear empties both stacks. Called when the catalog reloads.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// UndoLen reports the number of undoable snapshots.
func (h *History) UndoLen() int {
	return len(h.undo)
}

// RedoLen reports the number of redoable snapshots.
func (h *History) RedoLen() int {
	return len(h.redo)
}
