package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/tui/styles"
	"tagvault/internal/application"
)

// ConfirmKeyMap defines key bindings for the confirmation view
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// RestoreResolvedMsg reports the outcome of a confirmed or declined
// undo/redo restore
type RestoreResolvedMsg struct {
	Message string
	Err     error
}

// ConfirmModel is the model for the restore confirmation view. It holds
// a prepared undo or redo and resolves it on the user's answer; until
// then the history stacks stay untouched.
type ConfirmModel struct {
	ViewState
	pending *application.PendingRestore
	Keys    ConfirmKeyMap
}

// NewConfirmModel creates a new confirmation view model
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetPending installs the restore awaiting an answer
func (m *ConfirmModel) SetPending(p *application.PendingRestore) {
	m.pending = p
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.pending == nil {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}

		switch {
		case key.Matches(msg, m.Keys.Confirm):
			return m.resolve(true)
		case key.Matches(msg, m.Keys.Cancel):
			return m.resolve(false)
		}
	}

	return m, nil
}

// resolve completes the pending restore and reports the outcome
func (m *ConfirmModel) resolve(approved bool) (tea.Model, tea.Cmd) {
	p := m.pending
	m.pending = nil

	ch, err := p.Resolve(approved)
	if err != nil {
		return m, func() tea.Msg {
			return RestoreResolvedMsg{Err: err}
		}
	}

	message := restoreMessage(p.Title, p.Action(), ch)
	if !approved {
		message = fmt.Sprintf("%s cancelled", p.Title)
	}
	return m, func() tea.Msg {
		return RestoreResolvedMsg{Message: message}
	}
}

// restoreMessage formats a completed restore for the message line
func restoreMessage(title, action string, ch application.Change) string {
	past := "Redid"
	if title == "Undo" {
		past = "Undid"
	}
	msg := fmt.Sprintf("%s %q (%d records restored)", past, action, ch.Changed)
	if len(ch.Errors) > 0 {
		msg = fmt.Sprintf("%s (%d sidecar writes failed)", msg, len(ch.Errors))
	}
	return msg
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	var b strings.Builder

	if m.pending == nil {
		return styles.App.Render(styles.MutedText.Render("Nothing to confirm"))
	}

	b.WriteString(styles.Title.Render(m.pending.Title))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Operation:"))
	b.WriteString("\n  ")
	b.WriteString(m.pending.Action())
	b.WriteString("\n\n")

	b.WriteString(RenderConfirmPrompt(m.pending.Question))

	return styles.App.Render(b.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
