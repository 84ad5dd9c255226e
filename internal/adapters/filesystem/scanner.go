package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tagvault/internal/domain"
)

// ProbeFunc resolves the pixel dimensions of an image file. A nil
// result or an error leaves the record's dimensions unknown.
type ProbeFunc func(path string) (*domain.Dimensions, error)

// Scanner implements ports.Scanner with a recursive directory walk.
// Every file that is not a caption or metadata file becomes a record;
// there is no image-extension whitelist, so unreadable formats simply
// load without dimensions.
type Scanner struct {
	store *Store
	probe ProbeFunc
}

// NewScanner creates a scanner that pairs sidecars through store and
// probes dimensions with probe. probe may be nil to skip probing.
func NewScanner(store *Store, probe ProbeFunc) *Scanner {
	return &Scanner{store: store, probe: probe}
}

// Scan walks dir and returns one SourceFile per image found, with
// sidecar tags, sidecar mtime, and dimensions already resolved.
func (sc *Scanner) Scan(dir string) ([]domain.SourceFile, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []domain.SourceFile
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}

		// Skip hidden files and directories, but not the root itself
		if strings.HasPrefix(info.Name(), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if sc.skipExt(info.Name()) {
			return nil
		}

		files = append(files, sc.sourceFile(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	return files, nil
}

// skipExt reports whether a file name carries the caption extension or
// a metadata extension and must not become a record.
func (sc *Scanner) skipExt(name string) bool {
	ext := filepath.Ext(name)
	if ext == sc.store.CaptionExt() {
		return true
	}
	switch strings.ToLower(ext) {
	case ".json", ".jsonl":
		return true
	}
	return false
}

// sourceFile builds the load record for one discovered image path.
func (sc *Scanner) sourceFile(path string) domain.SourceFile {
	file := domain.SourceFile{Path: path}

	// A sidecar that exists but cannot be read still yields a record,
	// just without tags
	if tags, err := sc.store.ReadTags(path); err == nil {
		file.Tags = tags
	}
	if info, err := os.Stat(sc.store.SidecarPath(path)); err == nil {
		file.ModTime = info.ModTime().Unix()
	}
	if sc.probe != nil {
		if dims, err := sc.probe(path); err == nil {
			file.Dimensions = dims
		}
	}

	return file
}
