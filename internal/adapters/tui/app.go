package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/editor"
	"tagvault/internal/adapters/tui/views"
	"tagvault/internal/application"
	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewInput
	ViewConfirm
	ViewHelp
)

// Deps bundles the collaborators the TUI needs. Index, Editor, and
// Preview may be nil; the bound keys then report the feature as
// unavailable.
type Deps struct {
	Catalog *application.Catalog
	Store   ports.CaptionStore
	Scanner ports.Scanner
	Index   ports.TagIndex
	Editor  *editor.Opener
	Preview ports.PreviewOpener
	Dir     string
}

// App is the main TUI application model
type App struct {
	catalog *application.Catalog
	store   ports.CaptionStore
	scanner ports.Scanner
	index   ports.TagIndex
	editor  *editor.Opener
	dir     string

	state   ViewState
	browser *views.BrowserModel
	input   *views.InputModel
	confirm *views.ConfirmModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	return &App{
		catalog: deps.Catalog,
		store:   deps.Store,
		scanner: deps.Scanner,
		index:   deps.Index,
		editor:  deps.Editor,
		dir:     deps.Dir,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(deps.Catalog, deps.Preview, deps.Dir),
		input:   views.NewInputModel(deps.Catalog),
		confirm: views.NewConfirmModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.input.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToInputMsg:
		a.state = ViewInput
		a.input.SetMode(msg.Mode, msg.Position, msg.Prefill, msg.FilteredOnly)
		return a, a.input.Init()

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetPending(msg.Pending)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	// Input view messages
	case views.InputDoneMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		return a, nil

	case views.InputCancelledMsg:
		a.state = ViewBrowser
		return a, nil

	// Confirmation view messages
	case views.RestoreResolvedMsg:
		a.state = ViewBrowser
		if msg.Err != nil {
			a.browser.SetMessage(msg.Err.Error(), true)
		} else {
			a.browser.SetMessage(msg.Message, false)
		}
		return a, nil

	// Editor round-trip
	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Position)

	case editorFinishedMsg:
		a.finishEditor(msg)
		return a, nil

	// Catalog reload
	case views.ReloadRequestMsg:
		return a, a.rescan()

	case scanDoneMsg:
		a.finishRescan(msg)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewInput:
		_, cmd = a.input.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	position int
	err      error
}

// openEditor suspends the TUI and opens the record's sidecar in the
// configured editor. The caption is re-read when the editor exits.
func (a *App) openEditor(position int) tea.Cmd {
	if a.editor == nil {
		a.browser.SetMessage("No editor configured (set $EDITOR)", true)
		return nil
	}
	img := a.catalog.ImageAt(position)
	if img == nil {
		return nil
	}

	cmd, err := a.editor.Command(a.store.SidecarPath(img.Path))
	if err != nil {
		a.browser.SetMessage(err.Error(), true)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{position: position, err: err}
	})
}

// finishEditor applies the edited sidecar back onto the record
func (a *App) finishEditor(msg editorFinishedMsg) {
	if msg.err != nil {
		a.browser.SetMessage(fmt.Sprintf("editor failed: %v", msg.err), true)
		return
	}
	img := a.catalog.ImageAt(msg.position)
	if img == nil {
		return
	}

	tags, err := a.store.ReadTags(img.Path)
	if err != nil {
		a.browser.SetMessage(err.Error(), true)
		return
	}
	ch, err := a.catalog.SetTags(msg.position, tags)
	if err != nil {
		a.browser.SetMessage(err.Error(), true)
		return
	}
	if ch.Applied {
		a.browser.SetMessage("Caption updated from editor", false)
	} else {
		a.browser.SetMessage("Caption unchanged", false)
	}
}

type scanDoneMsg struct {
	files []domain.SourceFile
	err   error
}

// rescan walks the catalog directory off the update loop
func (a *App) rescan() tea.Cmd {
	return func() tea.Msg {
		files, err := a.scanner.Scan(a.dir)
		return scanDoneMsg{files: files, err: err}
	}
}

// finishRescan replaces the catalog contents with the fresh scan and
// brings the tag index up to date.
func (a *App) finishRescan(msg scanDoneMsg) {
	if msg.err != nil {
		a.browser.SetMessage(msg.err.Error(), true)
		return
	}
	a.catalog.Load(msg.files)

	message := fmt.Sprintf("Loaded %d records", a.catalog.Len())
	if a.index != nil {
		if _, err := a.index.SyncIncremental(msg.files); err != nil {
			message = fmt.Sprintf("%s (index sync failed: %v)", message, err)
		}
	}
	a.browser.SetMessage(message, false)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewInput:
		return a.input.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
