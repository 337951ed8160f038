// Package ui hosts the interactive review screen. The model here owns no
// selection logic of its own: every keypress is translated into a session
// command and the resulting state is rendered back. That keeps the review
// flow testable without a terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
	"github.com/ham-zax/AppData-Cleaner/internal/session"
	"github.com/ham-zax/AppData-Cleaner/internal/ui/styles"
	"github.com/ham-zax/AppData-Cleaner/pkg/utils"
)

// Model is the bubbletea shell around a review session.
type Model struct {
	state  session.State
	cursor int
	input  textinput.Model
	width  int
	height int
}

// NewModel creates a review model over the given orphan candidates.
func NewModel(orphans []scanner.Candidate) Model {
	ti := textinput.New()
	ti.Placeholder = session.ConfirmToken
	ti.CharLimit = 32
	ti.Width = 24

	return Model{
		state: session.New(orphans),
		input: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// apply routes a command through the session and keeps the text input in
// sync with the phase transition it caused.
func (m Model) apply(cmd session.Command) (Model, tea.Cmd) {
	prev := m.state.Phase
	m.state = session.Update(m.state, cmd)

	if m.state.Phase == session.Done {
		return m, tea.Quit
	}
	if m.state.Phase == session.ConfirmingDelete && prev != session.ConfirmingDelete {
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	if m.state.Phase != session.ConfirmingDelete {
		m.input.Blur()
	}
	return m, nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.apply(session.Quit{})
		}
		switch m.state.Phase {
		case session.Reviewing:
			return m.updateReviewing(msg)
		case session.ConfirmingDelete:
			return m.updateConfirming(msg)
		}
	}
	return m, nil
}

func (m Model) updateReviewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Candidates)-1 {
			m.cursor++
		}
	case " ", "space":
		return m.apply(session.Toggle{Index: m.cursor + 1})
	case "a":
		return m.apply(session.SelectAll{})
	case "n":
		return m.apply(session.SelectNone{})
	case "d", "enter":
		return m.apply(session.RequestDelete{})
	case "q":
		return m.apply(session.Quit{})
	}
	return m, nil
}

func (m Model) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.apply(session.ConfirmInput{Text: m.input.Value()})
	case "esc":
		return m.apply(session.ConfirmInput{Text: ""})
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.state.Phase {
	case session.ConfirmingDelete:
		return m.viewConfirming()
	case session.Done:
		return ""
	default:
		return m.viewReviewing()
	}
}

func (m Model) viewReviewing() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Orphaned Data Review"))
	b.WriteString("\n\n")

	for i, c := range m.state.Candidates {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.CursorStyle.Render("> ")
		}

		checkbox := styles.UncheckedBox()
		if c.Selected {
			checkbox = styles.CheckedBox()
		}

		b.WriteString(fmt.Sprintf("%s%s %-40s %s %s\n",
			cursor,
			checkbox,
			c.Name,
			styles.SizeStyle.Render(utils.FormatBytes(c.SizeBytes)),
			styles.LocationStyle.Render("["+c.Location+"]"),
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.SummaryStyle.Render(fmt.Sprintf("Selected: %d of %d (%s)",
		session.SelectedCount(m.state.Candidates),
		len(m.state.Candidates),
		utils.FormatBytes(session.SelectedSize(m.state.Candidates)))))
	b.WriteString("\n")

	if m.state.Notice != "" {
		b.WriteString(styles.NoticeStyle.Render(m.state.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("up/down:move  space:toggle  a:all  n:none  d:delete  q:quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewConfirming() string {
	var b strings.Builder

	b.WriteString(styles.DangerStyle.Render("Confirm Deletion"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("About to delete %d directories (%s).\n",
		session.SelectedCount(m.state.Candidates),
		utils.FormatBytes(session.SelectedSize(m.state.Candidates))))
	b.WriteString(fmt.Sprintf("Type %s and press enter to proceed. Anything else cancels.\n\n",
		styles.DangerStyle.Render(session.ConfirmToken)))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Run drives the review session to completion and returns the candidates
// the user committed for deletion. An empty slice means nothing to delete,
// whether the user quit or deselected everything.
func Run(orphans []scanner.Candidate) ([]scanner.Candidate, error) {
	p := tea.NewProgram(NewModel(orphans), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive review failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.state.Deletion, nil
}
