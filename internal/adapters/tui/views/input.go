package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tagvault/internal/adapters/tui/styles"
	"tagvault/internal/application"
	"tagvault/internal/domain"
)

// InputMode selects which mutation the input view collects text for
type InputMode int

const (
	InputAddAll InputMode = iota
	InputAddOne
	InputRename
	InputDelete
	InputReplace
	InputSetCaption
)

// SwitchToInputMsg requests switching to the input view
type SwitchToInputMsg struct {
	Mode         InputMode
	Position     int    // target record for single-record modes, else -1
	Prefill      string // initial first-field value
	FilteredOnly bool
}

// switchToInput builds the view-switch command for an input mode
func switchToInput(mode InputMode, position int, prefill string, filteredOnly bool) tea.Cmd {
	return func() tea.Msg {
		return SwitchToInputMsg{
			Mode:         mode,
			Position:     position,
			Prefill:      prefill,
			FilteredOnly: filteredOnly,
		}
	}
}

// InputDoneMsg reports a completed input-view mutation
type InputDoneMsg struct {
	Message string
}

// InputCancelledMsg reports the input view was dismissed
type InputCancelledMsg struct{}

// InputModel is the model for the text input view. One model serves
// every input-driven mutation; SetMode rebuilds the form for the
// requested operation.
type InputModel struct {
	ViewState
	catalog *application.Catalog
	form    *InputForm

	mode         InputMode
	position     int
	filteredOnly bool
}

// NewInputModel creates a new input view model
func NewInputModel(catalog *application.Catalog) *InputModel {
	m := &InputModel{catalog: catalog}
	m.SetMode(InputAddAll, -1, "", false)
	return m
}

// SetMode rebuilds the form for the given operation
func (m *InputModel) SetMode(mode InputMode, position int, prefill string, filteredOnly bool) {
	m.mode = mode
	m.position = position
	m.filteredOnly = filteredOnly
	m.ClearMessage()

	switch mode {
	case InputAddAll, InputAddOne:
		m.form = NewInputForm(
			NewInputField("Tags to add", "tag1, tag2", 200),
		)
	case InputRename:
		m.form = NewInputForm(
			NewInputField("Old tag", "current tag text", 100),
			NewInputField("New tag", "replacement tag text", 100),
		)
	case InputDelete:
		m.form = NewInputForm(
			NewInputField("Tag to delete", "exact tag text", 100),
		)
	case InputReplace:
		m.form = NewInputForm(
			NewInputField("Find", "text to find", 200),
			NewInputField("Replace with", "empty deletes the text", 200),
		)
	case InputSetCaption:
		m.form = NewInputForm(
			NewInputField("Caption", "tag1, tag2", 400),
		)
	}

	if prefill != "" {
		m.form.SetValue(0, prefill)
	}
}

// Init initializes the input view
func (m *InputModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the input view
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return InputCancelledMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// submit validates the form and runs the mutation
func (m *InputModel) submit() (tea.Model, tea.Cmd) {
	switch m.mode {
	case InputAddAll, InputAddOne:
		tags := domain.ParseCaption(m.form.Value(0), m.catalog.Separator())
		if len(tags) == 0 {
			m.SetMessage("Enter at least one tag", true)
			return m, nil
		}
		positions := m.targetPositions()
		ch, err := m.catalog.AddTags(tags, positions)
		return m.finish(ch, err)

	case InputRename:
		old, new := m.form.Value(0), m.form.Value(1)
		if old == "" || new == "" {
			m.SetMessage("Both tags are required", true)
			return m, nil
		}
		ch, err := m.catalog.RenameTag(old, new, m.filteredOnly)
		return m.finish(ch, err)

	case InputDelete:
		tag := m.form.Value(0)
		if tag == "" {
			m.SetMessage("Enter the tag to delete", true)
			return m, nil
		}
		ch, err := m.catalog.DeleteTag(tag, m.filteredOnly)
		return m.finish(ch, err)

	case InputReplace:
		find := m.form.RawValue(0)
		if find == "" {
			m.SetMessage("Enter the text to find", true)
			return m, nil
		}
		ch, err := m.catalog.FindAndReplace(find, m.form.RawValue(1), m.filteredOnly)
		return m.finish(ch, err)

	case InputSetCaption:
		tags := domain.ParseCaption(m.form.RawValue(0), m.catalog.Separator())
		ch, err := m.catalog.SetTags(m.position, tags)
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		if !ch.Applied {
			return m, done("Caption unchanged")
		}
		return m, done("Caption updated")
	}
	return m, nil
}

// targetPositions returns the record positions an add targets
func (m *InputModel) targetPositions() []int {
	if m.mode == InputAddOne && m.position >= 0 {
		return []int{m.position}
	}
	positions := make([]int, m.catalog.Len())
	for i := range positions {
		positions[i] = i
	}
	return positions
}

// finish routes a mutation outcome: errors stay in the form, success
// returns to the browser with a message.
func (m *InputModel) finish(ch application.Change, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.SetError(err)
		return m, nil
	}
	return m, done(changeMessage(ch))
}

func done(message string) tea.Cmd {
	return func() tea.Msg {
		return InputDoneMsg{Message: message}
	}
}

// title returns the heading for the current mode
func (m *InputModel) title() string {
	switch m.mode {
	case InputAddAll:
		return "Add Tags to All Records"
	case InputAddOne:
		if img := m.catalog.ImageAt(m.position); img != nil {
			return "Add Tags to " + img.Name()
		}
		return "Add Tags"
	case InputRename:
		return "Rename Tag"
	case InputDelete:
		return "Delete Tag"
	case InputReplace:
		return "Find and Replace"
	case InputSetCaption:
		if img := m.catalog.ImageAt(m.position); img != nil {
			return "Edit Caption of " + img.Name()
		}
		return "Edit Caption"
	default:
		return "Input"
	}
}

// submitLabel returns the enter-key help text for the current mode
func (m *InputModel) submitLabel() string {
	switch m.mode {
	case InputAddAll, InputAddOne:
		return "add"
	case InputRename:
		return "rename"
	case InputDelete:
		return "delete"
	case InputReplace:
		return "replace"
	default:
		return "apply"
	}
}

// View renders the input view
func (m *InputModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title()))
	b.WriteString("\n")
	if m.filteredOnly {
		b.WriteString(styles.FilterBadge.Render("filtered records only"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	// Live occurrence count while typing a find text
	if m.mode == InputReplace {
		if find := m.form.RawValue(0); find != "" {
			count := m.catalog.MatchCount(find, m.filteredOnly, false)
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d occurrences", count)))
			b.WriteString("\n\n")
		}
	}

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp(m.submitLabel()))

	return styles.App.Render(b.String())
}
