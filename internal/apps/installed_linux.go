//go:build linux

package apps

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// enumerate reads .desktop entries from the system and per-user application
// directories. The Name= field is preferred; the file's base name is the
// fallback.
func enumerate() ([]string, error) {
	dirs := []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}

	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".desktop") {
				continue
			}
			name := desktopName(filepath.Join(dir, entry.Name()))
			if name == "" {
				name = strings.TrimSuffix(entry.Name(), ".desktop")
			}
			names = append(names, name)
		}
	}
	return names, nil
}

// desktopName extracts the Name= value from the [Desktop Entry] section.
func desktopName(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	inEntry := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if inEntry && strings.HasPrefix(line, "Name=") {
			return strings.TrimPrefix(line, "Name=")
		}
	}
	return ""
}
