package commands

import (
	"fmt"
	"slices"
	"testing"

	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// testStore is an in-memory caption store for command tests.
type testStore struct {
	tags map[string][]string
}

func (s *testStore) ReadTags(imagePath string) ([]string, error) {
	return slices.Clone(s.tags[imagePath]), nil
}

func (s *testStore) WriteTags(imagePath string, tags []string) error {
	s.tags[imagePath] = slices.Clone(tags)
	return nil
}

func (s *testStore) SidecarPath(imagePath string) string {
	return imagePath + ".txt"
}

// newTestCatalog builds a loaded catalog with one record per tag list.
func newTestCatalog(t *testing.T, tags ...[]string) *application.Catalog {
	t.Helper()

	files := make([]domain.SourceFile, len(tags))
	for i, tg := range tags {
		files[i] = domain.SourceFile{
			Path: fmt.Sprintf("/photos/%03d.png", i),
			Tags: tg,
		}
	}

	c := application.NewCatalog(&testStore{tags: make(map[string][]string)}, ", ")
	c.Load(files)
	return c
}
