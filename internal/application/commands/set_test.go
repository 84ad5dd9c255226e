package commands

import (
	"context"
	"errors"
	"slices"
	"testing"

	"tagvault/internal/application"
)

func TestSetCaptionCommand_Execute(t *testing.T) {
	t.Run("parses the caption into clean tags", func(t *testing.T) {
		catalog := newTestCatalog(t, []string{"old"})

		cmd := NewSetCaptionCommand(catalog, 0, " cat ,  dog, , bird")
		result, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		want := []string{"cat", "dog", "bird"}
		if !slices.Equal(catalog.ImageAt(0).Tags, want) {
			t.Errorf("expected %v, got %v", want, catalog.ImageAt(0).Tags)
		}
		if !slices.Equal(result.Tags, want) {
			t.Errorf("expected result tags %v, got %v", want, result.Tags)
		}
		if catalog.UndoDepth() != 0 {
			t.Error("direct replace pushed a snapshot")
		}
	})

	t.Run("empty caption clears the record", func(t *testing.T) {
		catalog := newTestCatalog(t, []string{"old"})

		if _, err := NewSetCaptionCommand(catalog, 0, "").Execute(context.Background()); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		if len(catalog.ImageAt(0).Tags) != 0 {
			t.Errorf("expected cleared tags, got %v", catalog.ImageAt(0).Tags)
		}
	})

	t.Run("out-of-range position fails validation", func(t *testing.T) {
		catalog := newTestCatalog(t, []string{"old"})

		var valErr *application.ValidationError
		_, err := NewSetCaptionCommand(catalog, 9, "x").Execute(context.Background())
		if !errors.As(err, &valErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}

func TestMatchCountCommand_Execute(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat", "catfish"}, []string{"cat"})

	t.Run("substring matches", func(t *testing.T) {
		result, err := NewMatchCountCommand(catalog, "cat", false, false).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.Count != 3 {
			t.Errorf("expected 3, got %d", result.Count)
		}
	})

	t.Run("whole tag matches", func(t *testing.T) {
		result, err := NewMatchCountCommand(catalog, "cat", false, true).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.Count != 2 {
			t.Errorf("expected 2, got %d", result.Count)
		}
		if result.Message != `2 matches for "cat"` {
			t.Errorf("unexpected message %q", result.Message)
		}
	})

	t.Run("empty text fails validation", func(t *testing.T) {
		var valErr *application.ValidationError
		_, err := NewMatchCountCommand(catalog, "", false, false).Execute(context.Background())
		if !errors.As(err, &valErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}
