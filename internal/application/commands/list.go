package commands

import (
	"context"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// ListedRecord is one row of a catalog listing
type ListedRecord struct {
	Position int
	Name     string
	Caption  string
}

// ListRecordsCommand lists catalog records in position order, optionally
// narrowed by a filter expression
type ListRecordsCommand struct {
	catalog *application.Catalog
	Filter  string
	Limit   int
}

// NewListRecordsCommand creates a new ListRecordsCommand. A limit of
// zero means no limit.
func NewListRecordsCommand(catalog *application.Catalog, filter string, limit int) *ListRecordsCommand {
	return &ListRecordsCommand{
		catalog: catalog,
		Filter:  filter,
		Limit:   limit,
	}
}

// Execute runs the list command
func (c *ListRecordsCommand) Execute(ctx context.Context) ([]ListedRecord, error) {
	expr := domain.ParseFilter(c.Filter)
	separator := c.catalog.Separator()

	var rows []ListedRecord
	for position, img := range c.catalog.Images() {
		if !expr.Matches(img, separator) {
			continue
		}
		rows = append(rows, ListedRecord{
			Position: position,
			Name:     img.Name(),
			Caption:  img.Caption(separator),
		})
		if c.Limit > 0 && len(rows) >= c.Limit {
			break
		}
	}
	return rows, nil
}
