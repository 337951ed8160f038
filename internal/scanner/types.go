package scanner

// Kind identifies the bucket a candidate directory falls into after
// classification. Exactly one kind is assigned per candidate, and only
// orphans ever reach the selection and deletion phases.
type Kind int

const (
	KindProtected Kind = iota
	KindScanError
	KindTooSmall
	KindMatched
	KindOrphan
)

// String returns the report label for a kind.
func (k Kind) String() string {
	switch k {
	case KindProtected:
		return "protected"
	case KindScanError:
		return "scan_error"
	case KindTooSmall:
		return "too_small"
	case KindMatched:
		return "matched"
	case KindOrphan:
		return "orphan"
	default:
		return "unknown"
	}
}

// Classification is the final verdict for one candidate. It is decided once,
// deterministically, from the candidate's name, size, the whitelist, and the
// installed-name list, and never mutated afterward.
type Classification struct {
	Kind  Kind
	Owner string // installed application the candidate was attributed to, KindMatched only
	Err   string // measurement failure detail, KindScanError only
}

// Candidate is one directory considered for removal.
type Candidate struct {
	Path      string
	Name      string
	SizeBytes int64
	Location  string // label of the scan root the candidate was found under
	Class     Classification
	Selected  bool
}

// Orphans filters a classified candidate list down to the orphan set.
func Orphans(candidates []Candidate) []Candidate {
	var orphans []Candidate
	for _, c := range candidates {
		if c.Class.Kind == KindOrphan {
			orphans = append(orphans, c)
		}
	}
	return orphans
}

// TotalSize sums the measured sizes of a candidate list.
func TotalSize(candidates []Candidate) int64 {
	var total int64
	for _, c := range candidates {
		total += c.SizeBytes
	}
	return total
}
