package domain

import "strings"

// FilterKind discriminates the supported filter expression forms.
type FilterKind int

const (
	FilterKindAll      FilterKind = iota // empty query, every record visible
	FilterKindTag                        // tag:X, exact tag match
	FilterKindCaption                    // caption:SUB, caption substring
	FilterKindUntagged                   // untagged, records with no tags
	FilterKindText                       // bare text, caption substring
)

func (k FilterKind) String() string {
	switch k {
	case FilterKindAll:
		return "All"
	case FilterKindTag:
		return "Tag"
	case FilterKindCaption:
		return "Caption"
	case FilterKindUntagged:
		return "Untagged"
	case FilterKindText:
		return "Text"
	default:
		return "Unknown"
	}
}

const (
	tagPrefix     = "tag:"
	captionPrefix = "caption:"
	untaggedQuery = "untagged"
)

// FilterExpr is a compiled filter query. The zero value matches every
// record.
type FilterExpr struct {
	Kind FilterKind
	Text string
}

// ParseFilter compiles a query string into a filter expression.
// Supported forms: "tag:X" (exact tag), "caption:SUB" (caption
// substring), "untagged" (records with no tags), any other non-empty
// text (caption substring). An empty or all-whitespace query matches
// everything.
func ParseFilter(query string) FilterExpr {
	query = strings.TrimSpace(query)

	switch {
	case query == "":
		return FilterExpr{Kind: FilterKindAll}
	case query == untaggedQuery:
		return FilterExpr{Kind: FilterKindUntagged}
	case strings.HasPrefix(query, tagPrefix):
		return FilterExpr{Kind: FilterKindTag, Text: strings.TrimPrefix(query, tagPrefix)}
	case strings.HasPrefix(query, captionPrefix):
		return FilterExpr{Kind: FilterKindCaption, Text: strings.TrimPrefix(query, captionPrefix)}
	default:
		return FilterExpr{Kind: FilterKindText, Text: query}
	}
}

// Matches reports whether an image satisfies the expression. Substring
// forms compare case-insensitively against the caption joined with the
// separator; the tag form requires an exact, case-sensitive tag.
func (f FilterExpr) Matches(img *Image, separator string) bool {
	switch f.Kind {
	case FilterKindAll:
		return true
	case FilterKindUntagged:
		return len(img.Tags) == 0
	case FilterKindTag:
		for _, tag := range img.Tags {
			if tag == f.Text {
				return true
			}
		}
		return false
	case FilterKindCaption, FilterKindText:
		caption := strings.ToLower(img.Caption(separator))
		return strings.Contains(caption, strings.ToLower(f.Text))
	default:
		return false
	}
}
