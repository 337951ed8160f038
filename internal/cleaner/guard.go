package cleaner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// guardPath rejects paths whose removal could never be intended: empty or
// relative paths, filesystem roots, and the user's home directory itself.
// The classifier's whitelist protects known names; this is the last check
// before an irreversible os.RemoveAll.
func guardPath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("refusing relative path %q", path)
	}
	clean := filepath.Clean(path)
	if clean == string(filepath.Separator) ||
		clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("refusing filesystem root %q", path)
	}
	if home, err := os.UserHomeDir(); err == nil && clean == filepath.Clean(home) {
		return fmt.Errorf("refusing home directory %q", path)
	}
	return nil
}
