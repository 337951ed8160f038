package scanner

import "strings"

// nameDelimiters are the characters that split directory and application
// names into words for the token-level fallback.
const nameDelimiters = " -_."

// minTokenLen drops short tokens ("the", "app", "v2") that would match
// almost anything.
const minTokenLen = 4

// Matches reports whether a directory name can be attributed to an installed
// application name. It tries a case-insensitive bidirectional substring test
// first, then falls back to comparing individual words of both names.
//
// The heuristic is deliberately permissive: a false match only hides a
// reclaimable directory, while a false orphan flag puts live application
// data on the deletion list. "Steam" therefore matches "Steamworks" without
// any confidence weighting.
func Matches(candidateName, ownerName string) bool {
	owner := strings.ToLower(strings.TrimSpace(ownerName))
	if owner == "" {
		return false
	}
	cand := strings.ToLower(candidateName)

	if strings.Contains(cand, owner) || strings.Contains(owner, cand) {
		return true
	}

	for _, ct := range splitWords(cand) {
		for _, ot := range splitWords(owner) {
			if strings.Contains(ct, ot) || strings.Contains(ot, ct) {
				return true
			}
		}
	}
	return false
}

// FindOwner returns the first installed name the candidate can be attributed
// to, scanning installedNames in input order. Blank entries are skipped.
func FindOwner(candidateName string, installedNames []string) (string, bool) {
	for _, owner := range installedNames {
		if strings.TrimSpace(owner) == "" {
			continue
		}
		if Matches(candidateName, owner) {
			return owner, true
		}
	}
	return "", false
}

func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(nameDelimiters, r)
	})
	words := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			words = append(words, f)
		}
	}
	return words
}
