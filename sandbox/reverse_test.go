package sandbox

import "testing"

func TestReverse(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"hola", "aloh"},
		{"año", "oña"},
		{"расход", "дохсар"},
	}

	for i, tc := range cases {
		if got := Reverse(tc.in); got != tc.out {
			t.Fatalf("case %d: Reverse(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
		if got := Reverse(Reverse(tc.in)); got != tc.in {
			t.Fatalf("case %d: double reversal of %q = %q", i, tc.in, got)
		}
	}
}
