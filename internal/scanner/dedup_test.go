package scanner

import "testing"

func pathsOf(candidates []Candidate) []string {
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.Path
	}
	return paths
}

func candidatesFor(paths ...string) []Candidate {
	candidates := make([]Candidate, len(paths))
	for i, p := range paths {
		candidates[i] = Candidate{Path: p, Class: Classification{Kind: KindOrphan}}
	}
	return candidates
}

func TestDedupNested(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"nested candidate collapses to ancestor",
			[]string{"/home/u/project/node_modules", "/home/u/project/node_modules/dep/node_modules"},
			[]string{"/home/u/project/node_modules"},
		},
		{
			"descendant listed first still collapses",
			[]string{"/home/u/project/node_modules/dep/node_modules", "/home/u/project/node_modules"},
			[]string{"/home/u/project/node_modules"},
		},
		{
			"three levels keep only the topmost",
			[]string{"/a/x", "/a/x/y", "/a/x/y/z"},
			[]string{"/a/x"},
		},
		{
			"siblings are all kept",
			[]string{"/data/alpha", "/data/beta", "/data/gamma"},
			[]string{"/data/alpha", "/data/beta", "/data/gamma"},
		},
		{
			"name prefix without separator boundary is not an ancestor",
			[]string{"/a/app", "/a/appdata"},
			[]string{"/a/app", "/a/appdata"},
		},
		{
			"trailing separator does not defeat the match",
			[]string{"/a/x/", "/a/x/y"},
			[]string{"/a/x/"},
		},
		{
			"empty input",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pathsOf(dedup(candidatesFor(tt.in...), false))
			if len(got) != len(tt.want) {
				t.Fatalf("kept %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("kept[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDedupCaseFold(t *testing.T) {
	in := candidatesFor(`C:\Users\u\AppData\Local\App`, `c:\users\u\appdata\local\app\Cache`)

	got := dedup(in, true)
	if len(got) != 1 {
		t.Fatalf("kept %d candidates, want 1", len(got))
	}
	if got[0].Path != `C:\Users\u\AppData\Local\App` {
		t.Errorf("kept %q, want the ancestor", got[0].Path)
	}

	// Without folding the differing case breaks the prefix relation.
	if got := dedup(in, false); len(got) != 2 {
		t.Errorf("case-sensitive dedup kept %d, want 2", len(got))
	}
}

func TestDedupOrderIndependence(t *testing.T) {
	a := candidatesFor("/r/top", "/r/top/mid", "/r/other")
	b := candidatesFor("/r/other", "/r/top/mid", "/r/top")

	gotA := pathsOf(dedup(a, false))
	gotB := pathsOf(dedup(b, false))

	if len(gotA) != 2 || len(gotB) != 2 {
		t.Fatalf("kept %v and %v, want two survivors each", gotA, gotB)
	}
	for _, got := range [][]string{gotA, gotB} {
		seen := map[string]bool{}
		for _, p := range got {
			seen[p] = true
		}
		if !seen["/r/top"] || !seen["/r/other"] {
			t.Errorf("survivors = %v, want /r/top and /r/other", got)
		}
	}
}
