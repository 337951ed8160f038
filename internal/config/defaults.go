package config

// DefaultMinSize is the size threshold below which a candidate is not worth
// bothering the operator about.
const DefaultMinSize = "1MB"

// GetDefault returns the default configuration.
func GetDefault() *Config {
	return &Config{
		MinSize: DefaultMinSize,
		Workers: 4,
	}
}

// BaselineWhitelist returns the built-in set of names that are never
// classified as orphans: OS namespaces, major vendors whose directories
// outlive individual product installs, and desktop-environment state. The
// run-time whitelist is the union of this list and the caller's additions.
func BaselineWhitelist() []string {
	return []string{
		// OS and platform namespaces
		"Microsoft",
		"Microsoft Corporation",
		"Windows",
		"WindowsApps",
		"Packages",
		"Programs",
		"Temp",
		"CrashDumps",
		"D3DSCache",
		"ConnectedDevicesPlatform",
		"Comms",
		"PlaceholderTileLogoFolder",
		"Publishers",
		"PeerDistRepub",
		"SquirrelTemp",
		"Apple",
		"Apple Computer",
		"com.apple.Safari",
		// Major vendors
		"Google",
		"Mozilla",
		"Adobe",
		"Intel",
		"NVIDIA",
		"NVIDIA Corporation",
		"AMD",
		"Realtek",
		"Oracle",
		"IBM",
		"Hewlett-Packard",
		"Dell",
		"Lenovo",
		// Shared runtimes and package tooling
		"dotnet",
		"Common Files",
		"pip",
		"npm",
		"go-build",
		// Desktop environments and session state
		"systemd",
		"dconf",
		"fontconfig",
		"gnome",
		"kde",
		"pulse",
		"Trash",
	}
}
