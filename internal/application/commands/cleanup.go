package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// CleanupResult contains the result of a cleanup operation
type CleanupResult struct {
	Change  application.Change
	Message string
}

// RemoveDuplicatesCommand removes duplicate tags from every record,
// keeping the first occurrence of each
type RemoveDuplicatesCommand struct {
	catalog *application.Catalog
}

// NewRemoveDuplicatesCommand creates a new RemoveDuplicatesCommand
func NewRemoveDuplicatesCommand(catalog *application.Catalog) *RemoveDuplicatesCommand {
	return &RemoveDuplicatesCommand{catalog: catalog}
}

// Execute runs the duplicate removal command
func (c *RemoveDuplicatesCommand) Execute(ctx context.Context) (*CleanupResult, error) {
	change, err := c.catalog.RemoveDuplicateTags()
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Removed %d duplicate tags from %d records",
		change.Removed, change.Changed)
	return &CleanupResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}

// RemoveEmptyCommand removes empty and all-whitespace tags from every
// record
type RemoveEmptyCommand struct {
	catalog *application.Catalog
}

// NewRemoveEmptyCommand creates a new RemoveEmptyCommand
func NewRemoveEmptyCommand(catalog *application.Catalog) *RemoveEmptyCommand {
	return &RemoveEmptyCommand{catalog: catalog}
}

// Execute runs the empty-tag removal command
func (c *RemoveEmptyCommand) Execute(ctx context.Context) (*CleanupResult, error) {
	change, err := c.catalog.RemoveEmptyTags()
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Removed %d empty tags from %d records",
		change.Removed, change.Changed)
	return &CleanupResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
