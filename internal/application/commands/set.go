package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// SetResult contains the result of a direct caption replace
type SetResult struct {
	Change  application.Change
	Tags    []string
	Message string
}

// SetCaptionCommand overwrites one record's tags from a caption string.
// This is the direct-edit path: no history snapshot, no confirmation.
type SetCaptionCommand struct {
	catalog  *application.Catalog
	Position int
	Caption  string
}

// NewSetCaptionCommand creates a new SetCaptionCommand
func NewSetCaptionCommand(catalog *application.Catalog, position int, caption string) *SetCaptionCommand {
	return &SetCaptionCommand{
		catalog:  catalog,
		Position: position,
		Caption:  caption,
	}
}

// Validate checks if the replace is valid. An empty caption is allowed;
// it clears the record's tags.
func (c *SetCaptionCommand) Validate() error {
	return application.ValidatePosition("position", c.Position, c.catalog.Len())
}

// Execute runs the caption replace
func (c *SetCaptionCommand) Execute(ctx context.Context) (*SetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tags := domain.ParseCaption(c.Caption, c.catalog.Separator())
	change, err := c.catalog.SetTags(c.Position, tags)
	if err != nil {
		return nil, err
	}

	img := c.catalog.ImageAt(c.Position)
	var message string
	if change.Applied {
		message = fmt.Sprintf("Set %d tags on %s", len(tags), img.Name())
	} else {
		message = fmt.Sprintf("No change for %s", img.Name())
	}
	return &SetResult{
		Change:  change,
		Tags:    tags,
		Message: withWriteWarnings(message, change),
	}, nil
}
