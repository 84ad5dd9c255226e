package commands

import (
	"context"
	"strings"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// SearchCommand finds records whose caption contains a substring,
// case-insensitively.
type SearchCommand struct {
	catalog *application.Catalog
	Query   string
	Limit   int
}

// NewSearchCommand creates a new SearchCommand. A limit of zero means
// no limit.
func NewSearchCommand(catalog *application.Catalog, query string, limit int) *SearchCommand {
	return &SearchCommand{
		catalog: catalog,
		Query:   query,
		Limit:   limit,
	}
}

// Validate checks if the search is valid
func (c *SearchCommand) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return &application.ValidationError{
			Field:   "query",
			Message: "query is required",
		}
	}
	return nil
}

// Execute runs the search and returns matching records in catalog order
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchHit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(c.Query)
	separator := c.catalog.Separator()

	var hits []domain.SearchHit
	for _, img := range c.catalog.Images() {
		caption := img.Caption(separator)
		if !strings.Contains(strings.ToLower(caption), lowered) {
			continue
		}
		hits = append(hits, domain.SearchHit{Path: img.Path, Caption: caption})
		if c.Limit > 0 && len(hits) >= c.Limit {
			break
		}
	}
	return hits, nil
}
