package ports

// CaptionStore defines the interface for sidecar caption persistence.
// A caption lives next to its image as a text file sharing the image's
// path with the caption extension in place of the image extension.
type CaptionStore interface {
	// ReadTags reads an image's sidecar and returns its parsed tag
	// list. A missing sidecar is not an error; it yields no tags.
	ReadTags(imagePath string) ([]string, error)

	// WriteTags joins the tags and writes them to the image's sidecar,
	// creating it when absent. Invalid UTF-8 is made valid before the
	// write, so the file on disk is always well-formed text.
	WriteTags(imagePath string, tags []string) error

	// SidecarPath returns the caption file path for an image path.
	SidecarPath(imagePath string) string
}
