package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// AddResult contains the result of adding tags
type AddResult struct {
	Change  application.Change
	Message string
}

// AddTagsCommand adds one or more tags to one or more records
type AddTagsCommand struct {
	catalog   *application.Catalog
	Tags      []string
	Positions []int
}

// NewAddTagsCommand creates a new AddTagsCommand
func NewAddTagsCommand(catalog *application.Catalog, tags []string, positions []int) *AddTagsCommand {
	return &AddTagsCommand{
		catalog:   catalog,
		Tags:      tags,
		Positions: positions,
	}
}

// Validate checks if the add operation is valid
func (c *AddTagsCommand) Validate() error {
	if len(c.Tags) == 0 {
		return &application.ValidationError{
			Field:   "tags",
			Message: "at least one tag is required",
		}
	}
	for _, tag := range c.Tags {
		if err := application.ValidateRequired("tag", tag); err != nil {
			return err
		}
	}
	if len(c.Positions) == 0 {
		return &application.ValidationError{
			Field:   "positions",
			Message: "at least one record position is required",
		}
	}
	for _, pos := range c.Positions {
		if err := application.ValidatePosition("positions", pos, c.catalog.Len()); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the add command
func (c *AddTagsCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.catalog.AddTags(c.Tags, c.Positions)
	if err != nil {
		return nil, err
	}

	noun := "tag"
	if len(c.Tags) > 1 {
		noun = "tags"
	}
	message := fmt.Sprintf("Added %d %s to %d of %d records",
		len(c.Tags), noun, change.Changed, len(c.Positions))
	return &AddResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
