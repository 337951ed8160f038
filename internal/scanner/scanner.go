// Package scanner holds the decision pipeline of the cleaner: listing
// candidate directories, attributing them to installed applications,
// classifying them, and collapsing nested candidates.
package scanner

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ham-zax/AppData-Cleaner/internal/platform"
)

// ErrNoRoots is the only fatal error the pipeline produces: without at
// least one usable scan root there is nothing to do. Every other fault is
// recorded on the affected candidate instead.
var ErrNoRoots = errors.New("no usable scan roots")

// ProgressFunc is called after each candidate is classified.
type ProgressFunc func(location, path string, scanned int)

// Scanner lists one level of children under each root and classifies them.
type Scanner struct {
	classifier *Classifier
	progress   ProgressFunc
}

// New creates a Scanner around a classifier.
func New(classifier *Classifier) *Scanner {
	return &Scanner{classifier: classifier}
}

// SetProgress registers a progress callback.
func (s *Scanner) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// Scan walks the immediate children of each root and returns one classified
// candidate per child directory. The pass is single-threaded and
// deterministic: os.ReadDir returns entries sorted by name, and size
// measurement blocks synchronously inside the traversal.
func (s *Scanner) Scan(roots []platform.Root) ([]Candidate, error) {
	usable := usableRoots(roots)
	if len(usable) == 0 {
		return nil, ErrNoRoots
	}

	var candidates []Candidate
	scanned := 0
	for _, root := range usable {
		entries, err := os.ReadDir(root.Path)
		if err != nil {
			// Root vanished or became unreadable after the upfront check;
			// skip it like any other local fault.
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			cand := Candidate{
				Path:     filepath.Join(root.Path, entry.Name()),
				Name:     entry.Name(),
				Location: root.Label,
			}
			cand.Class = s.classifier.Classify(&cand)
			candidates = append(candidates, cand)
			scanned++
			if s.progress != nil {
				s.progress(root.Label, cand.Path, scanned)
			}
		}
	}
	return candidates, nil
}

// usableRoots filters the configured roots down to existing directories.
// Validating upfront lets the no-roots case fail before any scanning begins.
func usableRoots(roots []platform.Root) []platform.Root {
	var usable []platform.Root
	for _, r := range roots {
		if st, err := os.Stat(r.Path); err == nil && st.IsDir() {
			usable = append(usable, r)
		}
	}
	return usable
}
