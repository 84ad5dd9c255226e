package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// MatchResult contains the result of a match count
type MatchResult struct {
	Count   int
	Message string
}

// MatchCountCommand counts occurrences of a text across captions
type MatchCountCommand struct {
	catalog      *application.Catalog
	Text         string
	FilteredOnly bool
	WholeTags    bool
}

// NewMatchCountCommand creates a new MatchCountCommand
func NewMatchCountCommand(catalog *application.Catalog, text string, filteredOnly, wholeTags bool) *MatchCountCommand {
	return &MatchCountCommand{
		catalog:      catalog,
		Text:         text,
		FilteredOnly: filteredOnly,
		WholeTags:    wholeTags,
	}
}

// Validate checks if the match count is valid
func (c *MatchCountCommand) Validate() error {
	if c.Text == "" {
		return &application.ValidationError{
			Field:   "text",
			Message: "text is required",
		}
	}
	return nil
}

// Execute runs the match count
func (c *MatchCountCommand) Execute(ctx context.Context) (*MatchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	count := c.catalog.MatchCount(c.Text, c.FilteredOnly, c.WholeTags)

	unit := "matches"
	if count == 1 {
		unit = "match"
	}
	return &MatchResult{
		Count:   count,
		Message: fmt.Sprintf("%d %s for %q", count, unit, c.Text),
	}, nil
}
