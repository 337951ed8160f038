package apps

import "testing"

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"blanks dropped", []string{"", "  ", "Firefox"}, []string{"Firefox"}},
		{"case-insensitive duplicates keep first", []string{"Steam", "steam", "STEAM"}, []string{"Steam"}},
		{"order preserved", []string{"Zed", "Atom", "zed", "Vim"}, []string{"Zed", "Atom", "Vim"}},
		{"surrounding whitespace trimmed", []string{" GIMP ", "gimp"}, []string{"GIMP"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("dedupe(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dedupe(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
