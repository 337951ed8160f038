// Package apps enumerates the names of installed applications. The list is
// opaque input to the classifier: it is only ever compared against candidate
// directory names, never trusted for anything else.
package apps

import "strings"

// InstalledNames returns a deduplicated list of installed application names
// in enumeration order. An empty list is not an error: the classifier simply
// finds no owners.
func InstalledNames() ([]string, error) {
	names, err := enumerate()
	if err != nil {
		return nil, err
	}
	return dedupe(names), nil
}

// dedupe removes blanks and case-insensitive duplicates, keeping first
// occurrences so enumeration order is preserved.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
