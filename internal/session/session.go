// Package session implements the interactive selection state machine as a
// pure transition function over immutable state. The terminal shell in
// internal/ui only translates key presses into Commands and renders the
// resulting State, so every transition is unit-testable without a console.
package session

import (
	"fmt"

	"github.com/ham-zax/AppData-Cleaner/internal/scanner"
)

// ConfirmToken is the phrase the operator must type, exactly and
// case-sensitively, before the selected candidates are released for
// deletion.
const ConfirmToken = "DELETE"

// Phase is the session's current phase.
type Phase int

const (
	Reviewing Phase = iota
	ConfirmingDelete
	Done
)

// State is the complete session state. Aggregates over the candidate list
// (selected count, selected size) are derived on demand, never cached.
type State struct {
	Phase      Phase
	Candidates []scanner.Candidate
	Deletion   []scanner.Candidate // frozen on confirmation; empty after Quit
	Notice     string              // operator feedback from the last command
}

// Command is one operator action fed into Update.
type Command interface{ isCommand() }

// Toggle flips the selection of the candidate at a 1-based index.
type Toggle struct{ Index int }

// SelectAll selects every candidate.
type SelectAll struct{}

// SelectNone clears every selection.
type SelectNone struct{}

// Show is a pure read; it changes nothing.
type Show struct{}

// RequestDelete asks to move to the confirmation phase.
type RequestDelete struct{}

// ConfirmInput carries the text typed at the confirmation prompt.
type ConfirmInput struct{ Text string }

// Quit ends the session with an empty deletion set.
type Quit struct{}

func (Toggle) isCommand()        {}
func (SelectAll) isCommand()     {}
func (SelectNone) isCommand()    {}
func (Show) isCommand()          {}
func (RequestDelete) isCommand() {}
func (ConfirmInput) isCommand()  {}
func (Quit) isCommand()          {}

// New builds the initial reviewing state. Every orphan starts selected:
// deletion is reviewed by a human, not auto-executed, so the default leans
// toward reclaiming space and the review is opt-out.
func New(orphans []scanner.Candidate) State {
	candidates := make([]scanner.Candidate, len(orphans))
	copy(candidates, orphans)
	for i := range candidates {
		candidates[i].Selected = true
	}
	return State{Phase: Reviewing, Candidates: candidates}
}

// Unattended produces the terminal state auto mode uses: the full orphan set
// selected and frozen as the deletion set, no confirmation.
func Unattended(orphans []scanner.Candidate) State {
	s := New(orphans)
	s.Phase = Done
	s.Deletion = Selected(s.Candidates)
	return s
}

// Update applies one command and returns the next state. The input state is
// never mutated. Quit is honored in every non-terminal phase and never
// deletes anything.
func Update(s State, cmd Command) State {
	next := cloneState(s)
	next.Notice = ""

	if _, ok := cmd.(Quit); ok && s.Phase != Done {
		next.Phase = Done
		next.Deletion = nil
		return next
	}

	switch s.Phase {
	case Reviewing:
		return updateReviewing(next, cmd)
	case ConfirmingDelete:
		return updateConfirming(next, cmd)
	}
	return next
}

func updateReviewing(next State, cmd Command) State {
	switch c := cmd.(type) {
	case Toggle:
		if c.Index < 1 || c.Index > len(next.Candidates) {
			next.Notice = fmt.Sprintf("no candidate #%d", c.Index)
			return next
		}
		i := c.Index - 1
		next.Candidates[i].Selected = !next.Candidates[i].Selected
	case SelectAll:
		setSelected(next.Candidates, true)
	case SelectNone:
		setSelected(next.Candidates, false)
	case RequestDelete:
		if SelectedCount(next.Candidates) == 0 {
			next.Notice = "nothing to do: no candidates selected"
			return next
		}
		next.Phase = ConfirmingDelete
	case Show:
		// pure read
	}
	return next
}

func updateConfirming(next State, cmd Command) State {
	input, ok := cmd.(ConfirmInput)
	if !ok {
		return next
	}
	if input.Text == ConfirmToken {
		next.Phase = Done
		next.Deletion = Selected(next.Candidates)
		return next
	}
	// Anything but the exact token cancels back into review; a silent
	// delete must be impossible.
	next.Phase = Reviewing
	next.Notice = "confirmation did not match; nothing was deleted"
	return next
}

// Selected returns the currently selected candidates.
func Selected(candidates []scanner.Candidate) []scanner.Candidate {
	var selected []scanner.Candidate
	for _, c := range candidates {
		if c.Selected {
			selected = append(selected, c)
		}
	}
	return selected
}

// SelectedCount counts the selected candidates.
func SelectedCount(candidates []scanner.Candidate) int {
	n := 0
	for _, c := range candidates {
		if c.Selected {
			n++
		}
	}
	return n
}

// SelectedSize sums the measured sizes of the selected candidates.
func SelectedSize(candidates []scanner.Candidate) int64 {
	var total int64
	for _, c := range candidates {
		if c.Selected {
			total += c.SizeBytes
		}
	}
	return total
}

func setSelected(candidates []scanner.Candidate, selected bool) {
	for i := range candidates {
		candidates[i].Selected = selected
	}
}

func cloneState(s State) State {
	next := s
	next.Candidates = make([]scanner.Candidate, len(s.Candidates))
	copy(next.Candidates, s.Candidates)
	return next
}
