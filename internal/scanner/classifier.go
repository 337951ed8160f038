package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// SizeFunc measures the total size of a directory tree. A failure (typically
// a permission error somewhere in the tree) is a local fault: the classifier
// records it as a scan error and never propagates it.
type SizeFunc func(path string) (int64, error)

// Whitelist is a set of directory names that must never be classified as
// orphans, regardless of size or installed-name matches. Names are
// case-folded at construction and the set is fixed for the duration of a run.
type Whitelist struct {
	names map[string]struct{}
}

// NewWhitelist builds a whitelist from the union of the given name lists.
func NewWhitelist(lists ...[]string) *Whitelist {
	w := &Whitelist{names: make(map[string]struct{})}
	for _, list := range lists {
		for _, name := range list {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			w.names[name] = struct{}{}
		}
	}
	return w
}

// Contains reports whether name is whitelisted, ignoring case.
func (w *Whitelist) Contains(name string) bool {
	_, ok := w.names[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Len returns the number of whitelisted names.
func (w *Whitelist) Len() int { return len(w.names) }

// Classifier applies the ordered classification sequence to candidate
// directories. The order is fixed and significant: protection, measurability,
// size threshold, ownership match, orphan. Protection short-circuits before
// any size measurement is attempted.
type Classifier struct {
	whitelist    *Whitelist
	minSizeBytes int64
	installed    []string
	size         SizeFunc
}

// NewClassifier builds a classifier. installed is treated as read-only; its
// order decides which owner name is reported first on a match.
func NewClassifier(whitelist *Whitelist, minSizeBytes int64, installed []string) *Classifier {
	return &Classifier{
		whitelist:    whitelist,
		minSizeBytes: minSizeBytes,
		installed:    installed,
		size:         DirSize,
	}
}

// SetSizeFunc replaces the size measurement primitive.
func (c *Classifier) SetSizeFunc(fn SizeFunc) {
	if fn != nil {
		c.size = fn
	}
}

// Classify decides the candidate's classification and records the measured
// size on the candidate for later reporting. Re-running on identical inputs
// yields an identical result.
func (c *Classifier) Classify(cand *Candidate) Classification {
	if c.whitelist.Contains(cand.Name) {
		return Classification{Kind: KindProtected}
	}

	size, err := c.size(cand.Path)
	if err != nil {
		return Classification{Kind: KindScanError, Err: err.Error()}
	}
	cand.SizeBytes = size

	if size < c.minSizeBytes {
		return Classification{Kind: KindTooSmall}
	}

	if owner, ok := FindOwner(cand.Name, c.installed); ok {
		return Classification{Kind: KindMatched, Owner: owner}
	}

	return Classification{Kind: KindOrphan}
}

// DirSize walks a directory tree and sums the sizes of regular files. Unlike
// the scan itself, a walk error here is returned rather than skipped: an
// unmeasurable candidate must be reported, not silently treated as empty.
func DirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
