//go:build windows

package apps

import (
	"golang.org/x/sys/windows/registry"
)

// uninstallKeys are the registry locations where installers record
// themselves, including the 32-bit view on 64-bit systems.
var uninstallKeys = []struct {
	root registry.Key
	path string
}{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

// enumerate collects DisplayName values from the uninstall registry keys.
// Unreadable keys are skipped; the registry is full of entries this process
// cannot open and none of them are fatal.
func enumerate() ([]string, error) {
	var names []string
	for _, loc := range uninstallKeys {
		key, err := registry.OpenKey(loc.root, loc.path, registry.ENUMERATE_SUB_KEYS|registry.READ)
		if err != nil {
			continue
		}
		subkeys, err := key.ReadSubKeyNames(-1)
		if err != nil {
			key.Close()
			continue
		}
		for _, sub := range subkeys {
			entry, err := registry.OpenKey(loc.root, loc.path+`\`+sub, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			if name, _, err := entry.GetStringValue("DisplayName"); err == nil {
				names = append(names, name)
			}
			entry.Close()
		}
		key.Close()
	}
	return names, nil
}
