package mcp

import (
	"sync"

	"tagvault/internal/application"
	"tagvault/internal/ports"
)

// Service bundles the catalog with the collaborators the tool handlers
// need. The catalog expects a single mutator at a time, so every
// handler holds the service lock for the duration of the call.
type Service struct {
	mu      sync.Mutex
	catalog *application.Catalog
	index   ports.TagIndex
	scanner ports.Scanner
	dir     string
}

// NewService creates the tool handler state for one catalog directory.
// index may be nil; read tools then answer from the in-memory catalog.
func NewService(catalog *application.Catalog, index ports.TagIndex, scanner ports.Scanner, dir string) *Service {
	return &Service{catalog: catalog, index: index, scanner: scanner, dir: dir}
}

// reload rescans the catalog directory and reloads every record.
// Returns the number of records loaded. Caller holds the lock.
func (s *Service) reload() (int, error) {
	files, err := s.scanner.Scan(s.dir)
	if err != nil {
		return 0, err
	}

	s.catalog.Load(files)
	if s.index != nil {
		s.index.SyncIncremental(files)
	}

	return s.catalog.Len(), nil
}
