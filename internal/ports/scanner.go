package ports

import "tagvault/internal/domain"

// Scanner defines the interface for discovering catalog source files.
type Scanner interface {
	// Scan walks a directory tree and returns one SourceFile per image
	// found, with sidecar tags and dimensions already resolved. Caption
	// and metadata files are never returned as records.
	Scan(dir string) ([]domain.SourceFile, error)
}
