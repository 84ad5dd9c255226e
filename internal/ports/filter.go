package ports

import "tagvault/internal/domain"

// Filter defines the interface for the external record filter that
// scopes bulk operations. A nil Filter means every record is visible.
type Filter interface {
	// Visible reports whether the record participates in
	// filtered-scope operations.
	Visible(img *domain.Image) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(img *domain.Image) bool

func (f FilterFunc) Visible(img *domain.Image) bool {
	return f(img)
}
