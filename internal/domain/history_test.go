package domain

import (
	"fmt"
	"slices"
	"testing"
)

func TestHistory_RecordEvictsOldestWhenFull(t *testing.T) {
	h := &History{}

	for i := 0; i < UndoStackSize+1; i++ {
		h.Record(&HistoryItem{Action: fmt.Sprintf("op %d", i)})
	}

	if h.UndoLen() != UndoStackSize {
		t.Fatalf("expected undo depth %d, got %d", UndoStackSize, h.UndoLen())
	}

	// Snapshot 0 fell off the bottom; 1..32 remain.
	var oldest *HistoryItem
	for h.UndoLen() > 0 {
		oldest = h.PopUndo()
	}
	if oldest.Action != "op 1" {
		t.Errorf("expected oldest surviving snapshot to be op 1, got %s", oldest.Action)
	}
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	h := &History{}
	h.PushRedo(&HistoryItem{Action: "undone"})
	h.PushRedo(&HistoryItem{Action: "also undone"})

	h.Record(&HistoryItem{Action: "fresh edit"})

	if h.RedoLen() != 0 {
		t.Errorf("expected redo cleared after new snapshot, got depth %d", h.RedoLen())
	}
}

func TestHistory_PushUndoKeepsRedo(t *testing.T) {
	// Redo re-arms undo without discarding the rest of the redo stack.
	h := &History{}
	h.PushRedo(&HistoryItem{Action: "a"})
	h.PushRedo(&HistoryItem{Action: "b"})

	h.PushUndo(&HistoryItem{Action: "reapplied"})

	if h.RedoLen() != 2 {
		t.Errorf("expected redo depth 2, got %d", h.RedoLen())
	}
	if h.UndoLen() != 1 {
		t.Errorf("expected undo depth 1, got %d", h.UndoLen())
	}
}

func TestHistory_PushRedoIsUnbounded(t *testing.T) {
	h := &History{}
	for i := 0; i < UndoStackSize*2; i++ {
		h.PushRedo(&HistoryItem{Action: "op"})
	}
	if h.RedoLen() != UndoStackSize*2 {
		t.Errorf("expected redo depth %d, got %d", UndoStackSize*2, h.RedoLen())
	}
}

func TestHistory_PeekDoesNotPop(t *testing.T) {
	h := &History{}
	h.Record(&HistoryItem{Action: "only"})

	if item := h.PeekUndo(); item == nil || item.Action != "only" {
		t.Fatalf("expected to peek 'only', got %v", item)
	}
	if h.UndoLen() != 1 {
		t.Errorf("peek changed undo depth to %d", h.UndoLen())
	}
}

func TestHistory_PopOrder(t *testing.T) {
	h := &History{}
	h.Record(&HistoryItem{Action: "first"})
	h.Record(&HistoryItem{Action: "second"})

	if item := h.PopUndo(); item.Action != "second" {
		t.Errorf("expected to pop 'second', got %s", item.Action)
	}
	if item := h.PopUndo(); item.Action != "first" {
		t.Errorf("expected to pop 'first', got %s", item.Action)
	}
	if item := h.PopUndo(); item != nil {
		t.Errorf("expected nil from empty stack, got %v", item)
	}
}

func TestHistory_EmptyPeeksReturnNil(t *testing.T) {
	h := &History{}
	if h.PeekUndo() != nil || h.PeekRedo() != nil {
		t.Error("expected nil peeks on empty history")
	}
	if h.PopRedo() != nil {
		t.Error("expected nil pop on empty redo stack")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := &History{}
	h.Record(&HistoryItem{Action: "a"})
	h.PushRedo(&HistoryItem{Action: "b"})

	h.Clear()

	if h.UndoLen() != 0 || h.RedoLen() != 0 {
		t.Errorf("expected empty stacks, got undo %d redo %d", h.UndoLen(), h.RedoLen())
	}
}

func TestSnapshotTags_DeepCopies(t *testing.T) {
	images := []*Image{
		{Path: "a.png", Tags: []string{"cat", "dog"}},
		{Path: "b.png", Tags: nil},
	}

	snap := SnapshotTags(images)

	if len(snap) != 2 {
		t.Fatalf("expected one entry per record, got %d", len(snap))
	}
	if !slices.Equal(snap[0], []string{"cat", "dog"}) {
		t.Errorf("unexpected snapshot contents: %v", snap[0])
	}

	// Later edits to the record must not leak into the snapshot.
	images[0].Tags[0] = "mutated"
	if snap[0][0] != "cat" {
		t.Errorf("snapshot aliased live tags: %v", snap[0])
	}
}
