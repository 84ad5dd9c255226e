package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Change  application.Change
	Message string
}

// DeleteTagCommand deletes every occurrence of a tag from the catalog
type DeleteTagCommand struct {
	catalog      *application.Catalog
	Tag          string
	FilteredOnly bool
}

// NewDeleteTagCommand creates a new DeleteTagCommand
func NewDeleteTagCommand(catalog *application.Catalog, tag string, filteredOnly bool) *DeleteTagCommand {
	return &DeleteTagCommand{
		catalog:      catalog,
		Tag:          tag,
		FilteredOnly: filteredOnly,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteTagCommand) Validate() error {
	return application.ValidateRequired("tag", c.Tag)
}

// Execute runs the delete command
func (c *DeleteTagCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.catalog.DeleteTag(c.Tag, c.FilteredOnly)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Deleted %q from %d records (%d tags removed)",
		c.Tag, change.Changed, change.Removed)
	return &DeleteResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
