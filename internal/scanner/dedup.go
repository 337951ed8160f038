package scanner

import (
	"runtime"
	"sort"
	"strings"
)

// caseInsensitiveFS reports whether path comparison should fold case on this
// platform's default filesystems.
var caseInsensitiveFS = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// Dedup collapses a set of nested same-kind candidates to their topmost
// ancestors: when one candidate's path contains another candidate (a
// node_modules inside a node_modules), deleting the ancestor already covers
// the descendant.
func Dedup(candidates []Candidate) []Candidate {
	return dedup(candidates, caseInsensitiveFS)
}

// dedup sorts by path length ascending so parents are always evaluated
// before their descendants, whatever the input order. A candidate survives
// unless an already-kept path is a separator-bounded prefix of it. Survivors
// are returned in the original input order. O(n²) in the worst case, which
// is fine at directory-scan scale.
func dedup(candidates []Candidate, foldCase bool) []Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Path) < len(sorted[j].Path)
	})

	surviving := make(map[string]bool, len(sorted))
	keptPaths := make([]string, 0, len(sorted))
	for _, c := range sorted {
		p := normalizePath(c.Path, foldCase)
		if !hasAncestor(keptPaths, p) {
			surviving[p] = true
			keptPaths = append(keptPaths, p)
		}
	}

	kept := make([]Candidate, 0, len(keptPaths))
	for _, c := range candidates {
		p := normalizePath(c.Path, foldCase)
		if surviving[p] {
			kept = append(kept, c)
			delete(surviving, p)
		}
	}
	return kept
}

func normalizePath(path string, foldCase bool) string {
	p := strings.ReplaceAll(path, "\\", "/")
	if foldCase {
		p = strings.ToLower(p)
	}
	return strings.TrimRight(p, "/")
}

// hasAncestor reports whether any kept path is a proper prefix of p ending
// on a path-separator boundary, or p itself.
func hasAncestor(kept []string, p string) bool {
	for _, k := range kept {
		if !strings.HasPrefix(p, k) {
			continue
		}
		rest := p[len(k):]
		if rest == "" || rest[0] == '/' {
			return true
		}
	}
	return false
}
