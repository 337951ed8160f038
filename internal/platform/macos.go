//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func defaultRoots() ([]Root, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return []Root{
		{Path: filepath.Join(home, "Library", "Application Support"), Label: "Application Support"},
		{Path: filepath.Join(home, "Library", "Caches"), Label: "Caches"},
	}, nil
}
