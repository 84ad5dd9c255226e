package commands

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestRenameTagCommand_Validate(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat"})

	tests := []struct {
		name    string
		oldTag  string
		newTag  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid rename",
			oldTag:  "cat",
			newTag:  "lion",
			wantErr: false,
		},
		{
			name:    "empty old tag",
			oldTag:  "",
			newTag:  "lion",
			wantErr: true,
			errMsg:  "old tag is required",
		},
		{
			name:    "whitespace new tag",
			oldTag:  "cat",
			newTag:  "   ",
			wantErr: true,
			errMsg:  "new tag is required",
		},
		{
			name:    "identical tags",
			oldTag:  "cat",
			newTag:  "cat",
			wantErr: true,
			errMsg:  "same as the old tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRenameTagCommand(catalog, tt.oldTag, tt.newTag, false)
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

func TestRenameTagCommand_Execute(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat", "indoor"}, []string{"dog"})

	cmd := NewRenameTagCommand(catalog, "cat", "lion", false)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !slices.Equal(catalog.ImageAt(0).Tags, []string{"lion", "indoor"}) {
		t.Errorf("unexpected tags %v", catalog.ImageAt(0).Tags)
	}
	if result.Message != `Renamed "cat" to "lion" in 1 records` {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestDeleteTagCommand_Execute(t *testing.T) {
	catalog := newTestCatalog(t, []string{"cat", "dog", "cat"})

	cmd := NewDeleteTagCommand(catalog, "cat", false)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !slices.Equal(catalog.ImageAt(0).Tags, []string{"dog"}) {
		t.Errorf("unexpected tags %v", catalog.ImageAt(0).Tags)
	}
	if result.Message != `Deleted "cat" from 1 records (2 tags removed)` {
		t.Errorf("unexpected message %q", result.Message)
	}
}
