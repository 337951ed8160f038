//go:build windows

package platform

import (
	"errors"
	"os"
)

func defaultRoots() ([]Root, error) {
	var roots []Root
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		roots = append(roots, Root{Path: local, Label: "Local"})
	}
	if roaming := os.Getenv("APPDATA"); roaming != "" {
		roots = append(roots, Root{Path: roaming, Label: "Roaming"})
	}
	if len(roots) == 0 {
		return nil, errors.New("neither %LOCALAPPDATA% nor %APPDATA% is set")
	}
	return roots, nil
}
