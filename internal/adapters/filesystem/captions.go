package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tagvault/internal/domain"
)

// Store implements ports.CaptionStore using sidecar text files. A
// sidecar shares its image's path with the caption extension in place
// of the image extension.
type Store struct {
	captionExt string
	separator  string
}

// NewStore creates a caption store for the given caption extension and
// tag separator.
func NewStore(captionExt, separator string) *Store {
	if !strings.HasPrefix(captionExt, ".") {
		captionExt = "." + captionExt
	}
	return &Store{captionExt: captionExt, separator: separator}
}

// CaptionExt returns the sidecar extension, including the leading dot.
func (s *Store) CaptionExt() string {
	return s.captionExt
}

// SidecarPath returns the caption file path for an image path.
func (s *Store) SidecarPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + s.captionExt
}

// ReadTags reads an image's sidecar and returns its parsed tag list.
// A missing sidecar is not an error; it yields no tags. Bytes that are
// not valid UTF-8 are replaced rather than failing the read.
func (s *Store) ReadTags(imagePath string) ([]string, error) {
	data, err := os.ReadFile(s.SidecarPath(imagePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read caption: %w", err)
	}
	caption := strings.ToValidUTF8(string(data), "�")
	return domain.ParseCaption(caption, s.separator), nil
}

// WriteTags joins the tags with the separator and writes the image's
// sidecar, creating it when absent.
func (s *Store) WriteTags(imagePath string, tags []string) error {
	caption := strings.ToValidUTF8(domain.JoinCaption(tags, s.separator), "�")
	if err := os.WriteFile(s.SidecarPath(imagePath), []byte(caption), 0644); err != nil {
		return fmt.Errorf("failed to write caption: %w", err)
	}
	return nil
}
