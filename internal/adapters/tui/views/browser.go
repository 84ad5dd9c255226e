package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/tui/styles"
	"tagvault/internal/application"
	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

// BrowserKeyMap defines key bindings for the catalog browser view
type BrowserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	AddAll      key.Binding
	AddOne      key.Binding
	Rename      key.Binding
	Delete      key.Binding
	Replace     key.Binding
	EditCaption key.Binding
	Editor      key.Binding
	Copy        key.Binding
	Paste       key.Binding
	SortAlpha   key.Binding
	SortCount   key.Binding
	Shuffle     key.Binding
	Dedupe      key.Binding
	RemoveEmpty key.Binding
	KeepFirst   key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Filter      key.Binding
	Open        key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	AddAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add tags to all"),
	),
	AddOne: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "add tags to record"),
	),
	Rename: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rename tag"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete tag"),
	),
	Replace: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "find and replace"),
	),
	EditCaption: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "edit caption"),
	),
	Editor: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open in editor"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy caption"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste caption"),
	),
	SortAlpha: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort tags"),
	),
	SortCount: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sort by frequency"),
	),
	Shuffle: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "shuffle tags"),
	),
	Dedupe: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "remove duplicates"),
	),
	RemoveEmpty: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "remove empty tags"),
	),
	KeepFirst: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle keep-first"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "redo"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open image"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r", "f5"),
		key.WithHelp("ctrl+r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserChrome is the number of screen rows the browser spends on
// everything that is not the record list.
const browserChrome = 12

// BrowserModel is the model for the catalog browser view
type BrowserModel struct {
	ViewState
	catalog    *application.Catalog
	preview    ports.PreviewOpener
	catalogDir string

	// visible holds the catalog positions matching the active filter,
	// in catalog order. It is rebuilt on every catalog notification.
	visible []int
	pager   *Paginator

	filterInput textinput.Model
	filtering   bool
	filterExpr  domain.FilterExpr
	filterQuery string

	keepFirst bool
}

// NewBrowserModel creates a new browser model and subscribes it to
// catalog notifications so the record list tracks every mutation.
func NewBrowserModel(catalog *application.Catalog, preview ports.PreviewOpener, catalogDir string) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "tag:X, caption:SUB, untagged, or text"
	input.CharLimit = 200

	m := &BrowserModel{
		catalog:     catalog,
		preview:     preview,
		catalogDir:  catalogDir,
		pager:       NewPaginator(10),
		filterInput: input,
	}
	m.rebuildVisible()

	catalog.Subscribe(application.NotifierFuncs{
		OnRangeChanged: func(first, last int) { m.rebuildVisible() },
		OnReset: func() {
			m.pager.Reset()
			m.rebuildVisible()
		},
	})
	return m
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Messages shared across views

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.Top):
			m.pager.SetCursor(0)
			return m, nil

		case key.Matches(msg, BrowserKeys.Bottom):
			m.pager.SetCursor(len(m.visible) - 1)
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.AddAll):
			return m, switchToInput(InputAddAll, -1, "", false)

		case key.Matches(msg, BrowserKeys.AddOne):
			if pos := m.SelectedPosition(); pos >= 0 {
				return m, switchToInput(InputAddOne, pos, "", false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Rename):
			return m, switchToInput(InputRename, -1, "", m.filterActive())

		case key.Matches(msg, BrowserKeys.Delete):
			return m, switchToInput(InputDelete, -1, "", m.filterActive())

		case key.Matches(msg, BrowserKeys.Replace):
			return m, switchToInput(InputReplace, -1, "", m.filterActive())

		case key.Matches(msg, BrowserKeys.EditCaption):
			if pos := m.SelectedPosition(); pos >= 0 {
				prefill := m.catalog.ImageAt(pos).Caption(m.catalog.Separator())
				return m, switchToInput(InputSetCaption, pos, prefill, false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Editor):
			if pos := m.SelectedPosition(); pos >= 0 {
				return m, func() tea.Msg {
					return OpenEditorMsg{Position: pos}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.copyCaption()

		case key.Matches(msg, BrowserKeys.Paste):
			m.pasteCaption()
			return m, nil

		case key.Matches(msg, BrowserKeys.SortAlpha):
			ch, err := m.catalog.SortTags(m.keepFirst)
			m.showChange(ch, err)
			return m, nil

		case key.Matches(msg, BrowserKeys.SortCount):
			counts := domain.CountTags(m.catalog.Images())
			ch, err := m.catalog.SortTagsByCount(counts, m.keepFirst)
			m.showChange(ch, err)
			return m, nil

		case key.Matches(msg, BrowserKeys.Shuffle):
			ch, err := m.catalog.ShuffleTags(m.keepFirst)
			m.showChange(ch, err)
			return m, nil

		case key.Matches(msg, BrowserKeys.Dedupe):
			ch, err := m.catalog.RemoveDuplicateTags()
			m.showChange(ch, err)
			return m, nil

		case key.Matches(msg, BrowserKeys.RemoveEmpty):
			ch, err := m.catalog.RemoveEmptyTags()
			m.showChange(ch, err)
			return m, nil

		case key.Matches(msg, BrowserKeys.KeepFirst):
			m.keepFirst = !m.keepFirst
			if m.keepFirst {
				m.SetMessage("Keep-first on: sort and shuffle pin the first tag", false)
			} else {
				m.SetMessage("Keep-first off", false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Undo):
			return m.beginRestore(m.catalog.BeginUndo(), "Nothing to undo")

		case key.Matches(msg, BrowserKeys.Redo):
			return m.beginRestore(m.catalog.BeginRedo(), "Nothing to redo")

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, BrowserKeys.Open):
			return m, m.openPreview()

		case key.Matches(msg, BrowserKeys.Reload):
			return m, func() tea.Msg {
				return ReloadRequestMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// updateFilterInput handles keys while the filter input is focused
func (m *BrowserModel) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.applyFilter(m.filterInput.Value())
		m.filtering = false
		m.filterInput.Blur()
		return m, nil

	case tea.KeyEsc:
		m.filterInput.SetValue("")
		m.applyFilter("")
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// applyFilter compiles the query, installs it as the catalog's record
// filter, and rebuilds the visible list. An empty query removes the
// filter entirely.
func (m *BrowserModel) applyFilter(query string) {
	m.filterQuery = strings.TrimSpace(query)
	m.filterExpr = domain.ParseFilter(query)

	if m.filterQuery == "" {
		m.catalog.SetFilter(nil)
	} else {
		expr, sep := m.filterExpr, m.catalog.Separator()
		m.catalog.SetFilter(ports.FilterFunc(func(img *domain.Image) bool {
			return expr.Matches(img, sep)
		}))
	}
	m.rebuildVisible()
	m.pager.SetCursor(0)
}

// filterActive reports whether a filter is narrowing the record list
func (m *BrowserModel) filterActive() bool {
	return m.filterQuery != ""
}

// rebuildVisible recomputes which catalog positions pass the filter
func (m *BrowserModel) rebuildVisible() {
	m.visible = m.visible[:0]
	sep := m.catalog.Separator()
	for i, img := range m.catalog.Images() {
		if m.filterExpr.Matches(img, sep) {
			m.visible = append(m.visible, i)
		}
	}
	m.pager.SetTotal(len(m.visible))
}

// SetSize updates the view dimensions and resizes the list page to
// fill the space left by the fixed chrome.
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(height-browserChrome, 5))
}

// SelectedPosition returns the catalog position under the cursor, or
// -1 when the visible list is empty.
func (m *BrowserModel) SelectedPosition() int {
	cur := m.pager.Cursor()
	if cur < 0 || cur >= len(m.visible) {
		return -1
	}
	return m.visible[cur]
}

// beginRestore routes a prepared undo or redo: nil means an empty
// stack, confirmed operations go through the confirmation view, and
// everything else resolves immediately.
func (m *BrowserModel) beginRestore(p *application.PendingRestore, emptyMsg string) (tea.Model, tea.Cmd) {
	if p == nil {
		m.SetMessage(emptyMsg, false)
		return m, nil
	}
	if p.NeedsConfirm() {
		return m, func() tea.Msg {
			return SwitchToConfirmMsg{Pending: p}
		}
	}
	ch, err := p.Resolve(true)
	if err != nil {
		m.SetError(err)
		return m, nil
	}
	m.SetMessage(restoreMessage(p.Title, p.Action(), ch), false)
	return m, nil
}

// showChange reports the outcome of a bulk mutation in the message line
func (m *BrowserModel) showChange(ch application.Change, err error) {
	if err != nil {
		m.SetError(err)
		return
	}
	m.SetMessage(changeMessage(ch), false)
}

// changeMessage formats a mutation outcome for the message line
func changeMessage(ch application.Change) string {
	if !ch.Applied || ch.Changed == 0 {
		return fmt.Sprintf("%s: no changes", ch.Action)
	}
	msg := fmt.Sprintf("%s: %d records changed", ch.Action, ch.Changed)
	if ch.Removed > 0 {
		msg = fmt.Sprintf("%s, %d tags removed", msg, ch.Removed)
	}
	if len(ch.Errors) > 0 {
		msg = fmt.Sprintf("%s (%d sidecar writes failed)", msg, len(ch.Errors))
	}
	return msg
}

func (m *BrowserModel) copyCaption() tea.Cmd {
	pos := m.SelectedPosition()
	if pos < 0 {
		return nil
	}
	caption := m.catalog.ImageAt(pos).Caption(m.catalog.Separator())
	if err := clipboard.WriteAll(caption); err != nil {
		m.SetError(fmt.Errorf("failed to copy caption: %w", err))
		return nil
	}
	m.SetMessage("Caption copied", false)
	return nil
}

func (m *BrowserModel) pasteCaption() {
	pos := m.SelectedPosition()
	if pos < 0 {
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		m.SetError(fmt.Errorf("failed to read clipboard: %w", err))
		return
	}
	tags := domain.ParseCaption(text, m.catalog.Separator())
	if _, err := m.catalog.SetTags(pos, tags); err != nil {
		m.SetError(err)
		return
	}
	m.SetMessage("Caption pasted", false)
}

func (m *BrowserModel) openPreview() tea.Cmd {
	pos := m.SelectedPosition()
	if pos < 0 || m.preview == nil {
		return nil
	}
	path := m.catalog.ImageAt(pos).Path
	return func() tea.Msg {
		if err := m.preview.OpenFile(path); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("TagVault"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.catalogDir))
	b.WriteString("\n\n")

	// Filter input (while editing) or badge (while active)
	if m.filtering {
		b.WriteString(styles.InputFocused.Render(m.filterInput.View()))
		b.WriteString("\n")
	} else if m.filterActive() {
		b.WriteString(styles.FilterBadge.Render("filter: " + m.filterQuery))
		b.WriteString(styles.MutedText.Render("  (/ to change)"))
		b.WriteString("\n")
	}

	// Record list
	if len(m.visible) == 0 {
		if m.filterActive() {
			b.WriteString(styles.MutedText.Render("No records match the filter"))
		} else {
			b.WriteString(styles.MutedText.Render("No records in catalog"))
		}
		b.WriteString("\n")
	} else {
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(m.visible[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}
		if m.pager.TotalPages() > 1 {
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("Page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())))
			b.WriteString("\n")
		}
	}

	// Caption pane for the selected record
	if pos := m.SelectedPosition(); pos >= 0 {
		b.WriteString("\n")
		b.WriteString(m.renderCaptionPane(m.catalog.ImageAt(pos)))
	}

	// Status line
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")

	// Message
	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

// renderRow renders one record list row
func (m *BrowserModel) renderRow(position int, selected bool) string {
	img := m.catalog.ImageAt(position)
	text := fmt.Sprintf("%4d  %s", position, img.Name())

	if selected {
		return styles.RowSelected.Render(text) + m.renderRowSuffix(img)
	}
	if len(img.Tags) == 0 {
		return styles.RowUntagged.Render(text+"  (untagged)") + m.renderRowSuffix(img)
	}
	return styles.RowName.Render(text) + m.renderRowSuffix(img)
}

func (m *BrowserModel) renderRowSuffix(img *domain.Image) string {
	if img.Dimensions == nil {
		return ""
	}
	return styles.RowDimensions.Render(
		fmt.Sprintf("  %dx%d", img.Dimensions.Width, img.Dimensions.Height))
}

// renderCaptionPane renders the selected record's tags
func (m *BrowserModel) renderCaptionPane(img *domain.Image) string {
	var b strings.Builder
	b.WriteString(styles.CaptionLabel.Render(fmt.Sprintf("Caption (%d tags)", len(img.Tags))))
	b.WriteString("\n")
	if len(img.Tags) == 0 {
		b.WriteString(styles.MutedText.Render("  (untagged)"))
	} else {
		b.WriteString("  ")
		b.WriteString(styles.CaptionText.Render(truncate(img.Caption(m.catalog.Separator()), max(m.Width-6, 40))))
	}
	b.WriteString("\n")
	return b.String()
}

// renderStatusLine renders the record counts and history depths
func (m *BrowserModel) renderStatusLine() string {
	total := m.catalog.Len()
	parts := []string{fmt.Sprintf("%d records", total)}
	if m.filterActive() {
		parts = append(parts, fmt.Sprintf("%d shown", len(m.visible)))
	}
	parts = append(parts,
		fmt.Sprintf("undo %d", m.catalog.UndoDepth()),
		fmt.Sprintf("redo %d", m.catalog.RedoDepth()),
	)
	if m.keepFirst {
		parts = append(parts, "keep-first")
	}
	return styles.StatusBar.Render(strings.Join(parts, " • "))
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"a", "add"},
		{"R", "rename"},
		{"d", "delete"},
		{"f", "replace"},
		{"s", "sort"},
		{"u/r", "undo/redo"},
		{"/", "filter"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// truncate shortens a string to at most width runes, ellipsized
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// Messages for view switching

// SwitchToHelpMsg requests switching to the help view
type SwitchToHelpMsg struct{}

// SwitchToBrowserMsg requests switching back to the browser view
type SwitchToBrowserMsg struct{}

// SwitchToConfirmMsg requests confirmation of a prepared undo or redo
type SwitchToConfirmMsg struct {
	Pending *application.PendingRestore
}

// OpenEditorMsg requests opening a record's sidecar in the editor
type OpenEditorMsg struct {
	Position int
}

// ReloadRequestMsg requests rescanning the catalog directory
type ReloadRequestMsg struct{}
