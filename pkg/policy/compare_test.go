package policy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByLength(t *testing.T) {
	req := require.New(t)
	req.True(ByLength("a", "bb"))
	req.False(ByLength("bb", "a"))
	req.False(ByLength("aa", "bb"))
}

func TestByLengthThenLines(t *testing.T) {
	twoLinesShort := "a={\n1\n}"
	twoLinesLong := "abcdef={\n1234\n}"
	threeLinesShort := "b={\n1\n2\n}"

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"single shorter first", `short="x"`, `somewhatLongerAttribute="y"`, true},
		{"single longer not first", `somewhatLongerAttribute="y"`, `short="x"`, false},
		{"single equal length", `a="1"`, `b="2"`, false},
		{"single before multi", `veryveryveryverylongattribute="x"`, twoLinesShort, true},
		{"multi not before single", twoLinesShort, `a="x"`, false},
		{"fewer lines first regardless of length", twoLinesLong, threeLinesShort, true},
		{"more lines not first", threeLinesShort, twoLinesLong, false},
		{"equal lines shorter first", twoLinesShort, twoLinesLong, true},
		{"equal lines longer not first", twoLinesLong, twoLinesShort, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, ByLengthThenLines(tt.a, tt.b), "ByLengthThenLines(%q, %q)", tt.a, tt.b)
		})
	}
}

func TestByLengthThenLines_isStrictWeakOrder(t *testing.T) {
	req := require.New(t)
	texts := []string{"a", "bb", "c", "x={\n1\n}", "xx={\n1\n}", "y={\n1\n2\n}", "dd", "z={\n\n}"}

	for _, a := range texts {
		req.False(ByLengthThenLines(a, a), "irreflexive: %q", a)
		for _, b := range texts {
			if ByLengthThenLines(a, b) {
				req.False(ByLengthThenLines(b, a), "asymmetric: %q %q", a, b)
			}
			for _, c := range texts {
				if ByLengthThenLines(a, b) && ByLengthThenLines(b, c) {
					req.True(ByLengthThenLines(a, c), "transitive: %q %q %q", a, b, c)
				}
			}
		}
	}

	sorted := append([]string(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool { return ByLengthThenLines(sorted[i], sorted[j]) })
	req.Equal(-1, FirstViolation(sorted, ByLengthThenLines))
}

func TestFirstViolation(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{"nil", nil, -1},
		{"single", []string{"abc"}, -1},
		{"ascending", []string{"a", "bb", "ccc"}, -1},
		{"ties allowed", []string{"a", "b", "cc"}, -1},
		{"first pair", []string{"ccc", "a", "bb"}, 1},
		{"later pair", []string{"a", "ccc", "bb"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, FirstViolation(tt.texts, ByLength))
		})
	}
}
