package shape

import "unicode/utf8"

// Shape describes the line layout of a source fragment
type Shape struct {
	Multiline bool
	LineCount int // number of line breaks, only meaningful when Multiline
}

// Classify reports whether text spans several lines and how many line breaks it holds.
// "\r\n" counts as a single break; "\n", "\r", U+2028 and U+2029 count as one each.
func Classify(text string) Shape {
	breaks, _ := Breaks(text)
	return Shape{Multiline: breaks > 0, LineCount: breaks}
}

// Breaks counts the line breaks in text, as Classify does, and returns the
// byte offset where the last line starts.
func Breaks(text string) (breaks, lastLine int) {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\r':
			breaks++
			if i+1 < len(text) && text[i+1] == '\n' {
				size++
			}
			lastLine = i + size
		case '\n', '\u2028', '\u2029':
			breaks++
			lastLine = i + size
		}
		i += size
	}
	return breaks, lastLine
}

// IsMultiline is shorthand for Classify(text).Multiline
func IsMultiline(text string) bool {
	return Classify(text).Multiline
}

// Length is the length used by every ordering comparison, in code points
func Length(text string) int {
	return utf8.RuneCountInString(text)
}
