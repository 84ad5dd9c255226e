package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// ShuffleResult contains the result of a shuffle operation
type ShuffleResult struct {
	Change  application.Change
	Message string
}

// ShuffleTagsCommand randomly permutes every record's tags
type ShuffleTagsCommand struct {
	catalog   *application.Catalog
	KeepFirst bool
}

// NewShuffleTagsCommand creates a new ShuffleTagsCommand
func NewShuffleTagsCommand(catalog *application.Catalog, keepFirst bool) *ShuffleTagsCommand {
	return &ShuffleTagsCommand{
		catalog:   catalog,
		KeepFirst: keepFirst,
	}
}

// Execute runs the shuffle command
func (c *ShuffleTagsCommand) Execute(ctx context.Context) (*ShuffleResult, error) {
	change, err := c.catalog.ShuffleTags(c.KeepFirst)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Shuffled tags in %d records", change.Changed)
	return &ShuffleResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
