package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// Dimensions holds the pixel size of an image, already adjusted for any
// EXIF orientation that transposes width and height.
type Dimensions struct {
	Width  int
	Height int
}

// Image is one catalog record: an image file plus the tags read from its
// sidecar caption file. Identity is the path. Records are created at
// load time and never added or removed afterwards; only Tags changes.
type Image struct {
	Path       string
	Dimensions *Dimensions // nil when probing failed or was skipped
	Tags       []string

	// Render is an adapter-owned display handle (a styled list row, a
	// decoded thumbnail). The catalog never touches it.
	Render any
}

// SourceFile is the load contract between the scanner and the catalog: a
// discovered image path with its pre-parsed sidecar tags and optional
// dimensions. ModTime is the sidecar's mtime in Unix seconds (zero when
// there is no sidecar); the tag index uses it for incremental sync.
type SourceFile struct {
	Path       string
	Dimensions *Dimensions
	Tags       []string
	ModTime    int64
}

// Name returns the file name portion of the image path.
func (img *Image) Name() string {
	return filepath.Base(img.Path)
}

// Caption returns the image's tags joined with the separator.
func (img *Image) Caption(separator string) string {
	return strings.Join(img.Tags, separator)
}

// CloneTags returns an independent copy of the image's tag list.
func (img *Image) CloneTags() []string {
	return slices.Clone(img.Tags)
}

// SortImages orders images by path in ascending order. Applied once at
// catalog load; the order is not re-applied after edits.
func SortImages(images []*Image) {
	slices.SortFunc(images, func(a, b *Image) int {
		return strings.Compare(a.Path, b.Path)
	})
}
