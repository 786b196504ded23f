package policy

import "github.com/siyuan-infoblox/lensort/pkg/shape"

// Less reports whether text a must come strictly before text b
type Less func(a, b string) bool

// ByLength orders texts by ascending length
func ByLength(a, b string) bool {
	return shape.Length(a) < shape.Length(b)
}

// ByLengthThenLines puts single-line texts first, shortest first. Multi-line
// texts follow, ordered by line count and then by length.
func ByLengthThenLines(a, b string) bool {
	sa, sb := shape.Classify(a), shape.Classify(b)
	if sa.Multiline != sb.Multiline {
		return !sa.Multiline
	}
	if sa.Multiline && sa.LineCount != sb.LineCount {
		return sa.LineCount < sb.LineCount
	}
	return shape.Length(a) < shape.Length(b)
}

// FirstViolation returns the first index i > 0 such that texts[i] must come
// before texts[i-1], or -1 when texts is already ordered.
func FirstViolation(texts []string, less Less) int {
	for i := 1; i < len(texts); i++ {
		if less(texts[i], texts[i-1]) {
			return i
		}
	}
	return -1
}
