//go:build !windows

package platform

import "golang.org/x/sys/unix"

// FreeSpace returns the bytes available to the current user on the volume
// containing path.
func FreeSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
