package application

import "tagvault/internal/domain"

// Re-export domain types for use by adapters
type (
	Image      = domain.Image
	SourceFile = domain.SourceFile
	TagCounts  = domain.TagCounts
	TagStat    = domain.TagStat
	FilterExpr = domain.FilterExpr
)

// ParseFilter compiles a filter query string
func ParseFilter(query string) FilterExpr {
	return domain.ParseFilter(query)
}

// Change reports what one catalog operation did. First and Last are the
// inclusive endpoints of the changed-position range, -1 when no record
// changed. Errors holds one WriteError per record whose sidecar write
// failed; the in-memory state is authoritative regardless.
type Change struct {
	Action  string
	First   int
	Last    int
	Changed int // records whose tags changed
	Removed int // tags removed, for the cleanup operations
	Errors  []error
	Applied bool // false when declined, guarded, or nothing to apply
}

// newChange starts an applied change with an empty envelope.
func newChange(action string) Change {
	return Change{Action: action, First: -1, Last: -1, Applied: true}
}

// mark records position as changed, widening the envelope.
func (ch *Change) mark(position int) {
	if ch.First == -1 || position < ch.First {
		ch.First = position
	}
	if position > ch.Last {
		ch.Last = position
	}
	ch.Changed++
}
