package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Change  application.Change
	Message string
}

// RenameTagCommand renames every occurrence of a tag across the catalog
type RenameTagCommand struct {
	catalog      *application.Catalog
	OldTag       string
	NewTag       string
	FilteredOnly bool
}

// NewRenameTagCommand creates a new RenameTagCommand
func NewRenameTagCommand(catalog *application.Catalog, oldTag, newTag string, filteredOnly bool) *RenameTagCommand {
	return &RenameTagCommand{
		catalog:      catalog,
		OldTag:       oldTag,
		NewTag:       newTag,
		FilteredOnly: filteredOnly,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameTagCommand) Validate() error {
	if err := application.ValidateRequired("oldTag", c.OldTag); err != nil {
		return err
	}
	if err := application.ValidateRequired("newTag", c.NewTag); err != nil {
		return err
	}
	if c.OldTag == c.NewTag {
		return &application.ValidationError{
			Field:   "newTag",
			Message: "new tag is the same as the old tag",
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameTagCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.catalog.RenameTag(c.OldTag, c.NewTag, c.FilteredOnly)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Renamed %q to %q in %d records", c.OldTag, c.NewTag, change.Changed)
	return &RenameResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
