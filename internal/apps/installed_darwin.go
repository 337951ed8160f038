//go:build darwin

package apps

import (
	"os"
	"path/filepath"
	"strings"
)

// enumerate lists application bundles from the system and per-user
// Applications folders.
func enumerate() ([]string, error) {
	dirs := []string{"/Applications", "/System/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}

	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), ".app") {
				continue
			}
			names = append(names, strings.TrimSuffix(entry.Name(), ".app"))
		}
	}
	return names, nil
}
