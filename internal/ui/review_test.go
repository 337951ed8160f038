package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
	"github.com/ham-zax/AppData-Cleaner/internal/session"
)

func testOrphans() []scanner.Candidate {
	return []scanner.Candidate{
		{Path: "/d/Alpha", Name: "Alpha", SizeBytes: 100, Class: scanner.Classification{Kind: scanner.KindOrphan}},
		{Path: "/d/Beta", Name: "Beta", SizeBytes: 200, Class: scanner.Classification{Kind: scanner.KindOrphan}},
	}
}

func keyRunes(m Model, runes string) Model {
	for _, r := range runes {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func key(m Model, t tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: t})
	return next.(Model), cmd
}

func TestModelToggleUnderCursor(t *testing.T) {
	m := NewModel(testOrphans())

	m = keyRunes(m, " ")
	if m.state.Candidates[0].Selected {
		t.Error("space did not toggle the candidate under the cursor")
	}

	m = keyRunes(m, "j ")
	if m.state.Candidates[1].Selected {
		t.Error("cursor did not follow j before toggling")
	}
}

func TestModelSelectAllAndNone(t *testing.T) {
	m := NewModel(testOrphans())

	m = keyRunes(m, "n")
	if session.SelectedCount(m.state.Candidates) != 0 {
		t.Error("n did not clear the selection")
	}
	m = keyRunes(m, "a")
	if session.SelectedCount(m.state.Candidates) != 2 {
		t.Error("a did not select everything")
	}
}

func TestModelConfirmFlow(t *testing.T) {
	m := NewModel(testOrphans())

	m = keyRunes(m, "d")
	if m.state.Phase != session.ConfirmingDelete {
		t.Fatalf("phase = %v, want ConfirmingDelete", m.state.Phase)
	}

	m = keyRunes(m, session.ConfirmToken)
	m, cmd := key(m, tea.KeyEnter)

	if m.state.Phase != session.Done {
		t.Fatalf("phase = %v, want Done", m.state.Phase)
	}
	if len(m.state.Deletion) != 2 {
		t.Errorf("deletion set = %d, want 2", len(m.state.Deletion))
	}
	if cmd == nil {
		t.Error("reaching Done must quit the program")
	}
}

func TestModelConfirmMismatchReturnsToReview(t *testing.T) {
	m := NewModel(testOrphans())

	m = keyRunes(m, "d")
	m = keyRunes(m, "delete")
	m, _ = key(m, tea.KeyEnter)

	if m.state.Phase != session.Reviewing {
		t.Fatalf("phase = %v, want Reviewing", m.state.Phase)
	}
	if m.state.Deletion != nil {
		t.Error("mismatch must not produce a deletion set")
	}
	if m.state.Notice == "" {
		t.Error("cancellation notice missing")
	}
}

func TestModelEscapeCancelsConfirmation(t *testing.T) {
	m := NewModel(testOrphans())

	m = keyRunes(m, "d")
	m, _ = key(m, tea.KeyEsc)

	if m.state.Phase != session.Reviewing {
		t.Errorf("phase = %v, want Reviewing", m.state.Phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOrphans())
	m, cmd := key(m, tea.KeyCtrlC)

	if m.state.Phase != session.Done {
		t.Errorf("phase = %v, want Done", m.state.Phase)
	}
	if m.state.Deletion != nil {
		t.Error("quit must never delete")
	}
	if cmd == nil {
		t.Error("quit must stop the program")
	}
}

func TestModelViewReviewing(t *testing.T) {
	m := NewModel(testOrphans())
	view := m.View()

	for _, want := range []string{"Alpha", "Beta", "Selected: 2 of 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelViewConfirming(t *testing.T) {
	m := NewModel(testOrphans())
	m = keyRunes(m, "d")

	view := m.View()
	if !strings.Contains(view, session.ConfirmToken) {
		t.Errorf("confirmation view must name the required token:\n%s", view)
	}
}
