package cleaner

import (
	"errors"
	"os"
	"syscall"
)

// FailureKind categorizes why a deletion failed. Locked failures are
// expected and benign (the directory belongs to running software); other
// failures may indicate a deeper problem. The category only affects
// reporting: there is no retry either way, since an immediate retry on a
// locked resource is unlikely to succeed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureLocked
	FailureOther
)

// String returns the report label for a failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureLocked:
		return "locked"
	default:
		return "other"
	}
}

// Categorize maps a removal error onto a FailureKind.
func Categorize(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	if os.IsPermission(err) {
		return FailureLocked
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM, syscall.EBUSY:
			return FailureLocked
		}
	}
	return FailureOther
}
