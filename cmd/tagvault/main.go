package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/editor"
	"tagvault/internal/adapters/filesystem"
	"tagvault/internal/adapters/imagemeta"
	"tagvault/internal/adapters/preview"
	"tagvault/internal/adapters/sqlite"
	"tagvault/internal/adapters/tui"
	"tagvault/internal/application"
	"tagvault/internal/config"
	"tagvault/internal/domain"
)

func main() {
	dirFlag := flag.String("dir", config.CatalogDir(), "image directory to open")
	flag.Parse()

	// Initialize adapters
	store := filesystem.NewStore(config.CaptionExt(), config.Separator())
	scanner := filesystem.NewScanner(store, imagemeta.Probe)

	files, err := scanner.Scan(*dirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog := application.NewCatalog(store, config.Separator())
	catalog.Load(files)

	deps := tui.Deps{
		Catalog: catalog,
		Store:   store,
		Scanner: scanner,
		Editor:  editor.NewOpener(),
		Preview: preview.NewOpener(*dirFlag),
		Dir:     *dirFlag,
	}

	// The index is optional; without it the TUI answers from memory
	if index := openIndex(*dirFlag, catalog, store, files); index != nil {
		defer index.Close()
		deps.Index = index
	}

	// Create and run TUI app
	app := tui.NewApp(deps)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openIndex opens and syncs the tag index, and subscribes it to the
// catalog so mutations are mirrored as they happen. Returns nil when
// the index cannot be opened.
func openIndex(dir string, catalog *application.Catalog, store *filesystem.Store, files []domain.SourceFile) *sqlite.Index {
	index := sqlite.NewIndex(config.Separator())
	if err := index.Open(dir); err != nil {
		return nil
	}

	var err error
	if index.NeedsFullRebuild() {
		_, err = index.SyncFull(files)
	} else {
		_, err = index.SyncIncremental(files)
	}
	if err != nil {
		index.Close()
		return nil
	}

	catalog.Subscribe(sqlite.NewFollower(index, catalog, store.SidecarPath))
	return index
}
