//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// defaultRoots returns the XDG per-user data directories. Children of these
// roots are where uninstalled software most commonly leaves data behind.
func defaultRoots() ([]Root, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	return []Root{
		{Path: dataHome, Label: "Data"},
		{Path: cacheHome, Label: "Cache"},
		{Path: configHome, Label: "Config"},
	}, nil
}
