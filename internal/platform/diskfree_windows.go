//go:build windows

package platform

import "golang.org/x/sys/windows"

// FreeSpace returns the bytes available to the current user on the volume
// containing path.
func FreeSpace(path string) (uint64, error) {
	var freeToCaller, total, free uint64
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &free); err != nil {
		return 0, err
	}
	return freeToCaller, nil
}
