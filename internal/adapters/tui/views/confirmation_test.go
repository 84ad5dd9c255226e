package views

import (
	"strings"
	"testing"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

func newConfirmFixture(t *testing.T) (*application.Catalog, *ConfirmModel) {
	t.Helper()
	catalog := application.NewCatalog(stubStore{}, ", ")
	catalog.Load([]domain.SourceFile{
		{Path: "/photos/001.png", Tags: []string{"dog", "cat"}},
	})
	return catalog, NewConfirmModel()
}

func TestConfirmModel_ApprovedRestore(t *testing.T) {
	catalog, m := newConfirmFixture(t)

	if _, err := catalog.SortTags(false); err != nil {
		t.Fatal(err)
	}
	if got := catalog.ImageAt(0).Tags[0]; got != "cat" {
		t.Fatalf("expected sorted tags, got %v", catalog.ImageAt(0).Tags)
	}

	p := catalog.BeginUndo()
	if p == nil {
		t.Fatal("expected a pending undo")
	}
	m.SetPending(p)

	_, cmd := m.resolve(true)
	msg, ok := cmd().(RestoreResolvedMsg)
	if !ok {
		t.Fatalf("expected RestoreResolvedMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if !strings.Contains(msg.Message, `Undid "Sort Tags"`) {
		t.Errorf("message = %q", msg.Message)
	}

	if got := catalog.ImageAt(0).Tags[0]; got != "dog" {
		t.Errorf("expected original order restored, got %v", catalog.ImageAt(0).Tags)
	}
}

func TestConfirmModel_DeclinedRestore(t *testing.T) {
	catalog, m := newConfirmFixture(t)

	if _, err := catalog.SortTags(false); err != nil {
		t.Fatal(err)
	}
	depth := catalog.UndoDepth()

	m.SetPending(catalog.BeginUndo())
	_, cmd := m.resolve(false)
	msg := cmd().(RestoreResolvedMsg)

	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if msg.Message != "Undo cancelled" {
		t.Errorf("message = %q", msg.Message)
	}
	if got := catalog.ImageAt(0).Tags[0]; got != "cat" {
		t.Errorf("declined undo must not touch tags, got %v", catalog.ImageAt(0).Tags)
	}
	if catalog.UndoDepth() != depth {
		t.Errorf("undo depth changed from %d to %d", depth, catalog.UndoDepth())
	}
}

func TestConfirmModel_StaleRestore(t *testing.T) {
	catalog, m := newConfirmFixture(t)

	if _, err := catalog.SortTags(false); err != nil {
		t.Fatal(err)
	}
	p := catalog.BeginUndo()

	// A mutation between prepare and resolve invalidates the restore
	if _, err := catalog.AddTags([]string{"new"}, []int{0}); err != nil {
		t.Fatal(err)
	}

	m.SetPending(p)
	_, cmd := m.resolve(true)
	msg := cmd().(RestoreResolvedMsg)
	if msg.Err == nil {
		t.Fatal("expected a stale restore error")
	}
}
