package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// Sort orders accepted by SortTagsCommand.
const (
	SortAlphabetical = "alphabetical"
	SortByFrequency  = "frequency"
)

// SortResult contains the result of a sort operation
type SortResult struct {
	Change  application.Change
	Message string
}

// SortTagsCommand sorts every record's tags, alphabetically or by
// catalog-wide tag frequency
type SortTagsCommand struct {
	catalog   *application.Catalog
	Order     string
	KeepFirst bool
}

// NewSortTagsCommand creates a new SortTagsCommand
func NewSortTagsCommand(catalog *application.Catalog, order string, keepFirst bool) *SortTagsCommand {
	return &SortTagsCommand{
		catalog:   catalog,
		Order:     order,
		KeepFirst: keepFirst,
	}
}

// Validate checks if the sort operation is valid
func (c *SortTagsCommand) Validate() error {
	switch c.Order {
	case SortAlphabetical, SortByFrequency:
		return nil
	default:
		return &application.ValidationError{
			Field:   "order",
			Message: fmt.Sprintf("unknown sort order %q (want %s or %s)", c.Order, SortAlphabetical, SortByFrequency),
		}
	}
}

// Execute runs the sort command
func (c *SortTagsCommand) Execute(ctx context.Context) (*SortResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var change application.Change
	var err error
	if c.Order == SortByFrequency {
		counts := domain.CountTags(c.catalog.Images())
		change, err = c.catalog.SortTagsByCount(counts, c.KeepFirst)
	} else {
		change, err = c.catalog.SortTags(c.KeepFirst)
	}
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Sorted tags in %d records", change.Changed)
	return &SortResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
