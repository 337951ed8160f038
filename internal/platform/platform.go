// Package platform resolves the machine's default scan surface: the
// per-user application-data roots whose children are considered for
// cleanup, and the free-space primitive used for observed-freed accounting.
package platform

import (
	"fmt"
	"os"
)

// Root pairs a scan path with the location tag its child candidates inherit.
type Root struct {
	Path  string
	Label string
}

// Info describes the directories relevant to this platform.
type Info struct {
	Roots []Root
}

// GetInfo returns the default scan roots for the current OS. Roots that do
// not exist are filtered out here; whether the remaining set is usable is
// the caller's concern.
func GetInfo() (*Info, error) {
	roots, err := defaultRoots()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan roots: %w", err)
	}

	info := &Info{}
	for _, r := range roots {
		if st, err := os.Stat(r.Path); err == nil && st.IsDir() {
			info.Roots = append(info.Roots, r)
		}
	}
	return info, nil
}
