package commands

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestAddTagsCommand_Validate(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat"}, []string{"dog"})

	tests := []struct {
		name      string
		tags      []string
		positions []int
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid single tag",
			tags:      []string{"new"},
			positions: []int{0},
			wantErr:   false,
		},
		{
			name:      "valid multiple tags and targets",
			tags:      []string{"one", "two"},
			positions: []int{0, 1},
			wantErr:   false,
		},
		{
			name:      "no tags",
			tags:      nil,
			positions: []int{0},
			wantErr:   true,
			errMsg:    "at least one tag is required",
		},
		{
			name:      "blank tag",
			tags:      []string{"ok", "  "},
			positions: []int{0},
			wantErr:   true,
			errMsg:    "tag is required",
		},
		{
			name:      "no positions",
			tags:      []string{"new"},
			positions: nil,
			wantErr:   true,
			errMsg:    "at least one record position is required",
		},
		{
			name:      "position out of range",
			tags:      []string{"new"},
			positions: []int{0, 7},
			wantErr:   true,
			errMsg:    "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewAddTagsCommand(catalog, tt.tags, tt.positions)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestAddTagsCommand_Execute(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat"}, []string{"new"})

	cmd := NewAddTagsCommand(catalog, []string{"new"}, []int{0, 1})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !slices.Equal(catalog.ImageAt(0).Tags, []string{"cat", "new"}) {
		t.Errorf("unexpected tags %v", catalog.ImageAt(0).Tags)
	}
	if result.Change.Changed != 1 {
		t.Errorf("expected 1 changed record, got %d", result.Change.Changed)
	}
	if result.Message != "Added 1 tag to 1 of 2 records" {
		t.Errorf("unexpected message %q", result.Message)
	}
}
