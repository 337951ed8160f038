// Package utils holds small formatting helpers shared across the tool.
package utils

import "fmt"

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

// FormatBytes converts a byte count to a human-readable string.
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatSignedBytes is FormatBytes for values that are deltas rather than
// sizes: a negative count keeps its sign instead of clamping to zero.
func FormatSignedBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + FormatBytes(-bytes)
	}
	return FormatBytes(bytes)
}

// ParseSize converts a human-readable size ("50MB", "1.5 GB", "1024") to
// bytes. A bare number is taken as bytes.
func ParseSize(size string) (int64, error) {
	var value float64
	var unit string

	n, err := fmt.Sscanf(size, "%f%s", &value, &unit)
	if err != nil && n == 0 {
		return 0, fmt.Errorf("invalid size format: %s", size)
	}
	if value < 0 {
		return 0, fmt.Errorf("size must not be negative: %s", size)
	}

	switch unit {
	case "", "B", "b":
		return int64(value), nil
	case "KB", "kb", "Kb", "K", "k":
		return int64(value * KB), nil
	case "MB", "mb", "Mb", "M", "m":
		return int64(value * MB), nil
	case "GB", "gb", "Gb", "G", "g":
		return int64(value * GB), nil
	case "TB", "tb", "Tb", "T", "t":
		return int64(value * TB), nil
	default:
		return 0, fmt.Errorf("unknown unit: %s", unit)
	}
}
