package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("TagVault Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Image Caption Tag Editor"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("g / G", "First / last record"))
	b.WriteString(helpLine("ctrl+f / ctrl+b", "Next / previous page"))
	b.WriteString(helpLine("/", "Filter records (esc clears)"))
	b.WriteString("\n")

	// Tag edits section
	b.WriteString(styles.InputLabel.Render("Tag Edits"))
	b.WriteString("\n")
	b.WriteString(helpLine("a / A", "Add tags to all / this record"))
	b.WriteString(helpLine("R", "Rename a tag everywhere"))
	b.WriteString(helpLine("d", "Delete a tag everywhere"))
	b.WriteString(helpLine("f", "Find and replace caption text"))
	b.WriteString(helpLine("i", "Edit this record's caption"))
	b.WriteString(helpLine("e", "Open caption in $EDITOR"))
	b.WriteString(helpLine("c / p", "Copy / paste caption"))
	b.WriteString("\n")

	// Bulk operations section
	b.WriteString(styles.InputLabel.Render("Bulk Operations"))
	b.WriteString("\n")
	b.WriteString(helpLine("s / S", "Sort tags alphabetically / by frequency"))
	b.WriteString(helpLine("x", "Shuffle tags"))
	b.WriteString(helpLine("D / E", "Remove duplicate / empty tags"))
	b.WriteString(helpLine("t", "Toggle keep-first for sort and shuffle"))
	b.WriteString("\n")

	// History section
	b.WriteString(styles.InputLabel.Render("History"))
	b.WriteString("\n")
	b.WriteString(helpLine("u / r", "Undo / redo last operation"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("o", "Open image in system viewer"))
	b.WriteString(helpLine("ctrl+r / F5", "Rescan the catalog directory"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Filter syntax
	b.WriteString(styles.InputLabel.Render("Filter Syntax"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  tag:X       : records with the exact tag X"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  caption:SUB : captions containing SUB"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  untagged    : records with no tags"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  anything    : captions containing the text"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
