package commands

import (
	"context"
	"fmt"

	"tagvault/internal/application"
)

// FindReplaceResult contains the result of a find/replace operation
type FindReplaceResult struct {
	Change  application.Change
	Message string
}

// FindReplaceCommand replaces text in captions, within and across tag
// boundaries
type FindReplaceCommand struct {
	catalog      *application.Catalog
	FindText     string
	ReplaceText  string
	FilteredOnly bool
}

// NewFindReplaceCommand creates a new FindReplaceCommand
func NewFindReplaceCommand(catalog *application.Catalog, findText, replaceText string, filteredOnly bool) *FindReplaceCommand {
	return &FindReplaceCommand{
		catalog:      catalog,
		FindText:     findText,
		ReplaceText:  replaceText,
		FilteredOnly: filteredOnly,
	}
}

// Validate checks if the find/replace operation is valid. The replace
// text may be empty; that deletes the found text.
func (c *FindReplaceCommand) Validate() error {
	if c.FindText == "" {
		return &application.ValidationError{
			Field:   "findText",
			Message: "find text is required",
		}
	}
	return nil
}

// Execute runs the find/replace command
func (c *FindReplaceCommand) Execute(ctx context.Context) (*FindReplaceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.catalog.FindAndReplace(c.FindText, c.ReplaceText, c.FilteredOnly)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Replaced %q with %q in %d records",
		c.FindText, c.ReplaceText, change.Changed)
	return &FindReplaceResult{Change: change, Message: withWriteWarnings(message, change)}, nil
}
