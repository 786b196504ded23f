package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Shape
	}{
		{"empty string", "", Shape{}},
		{"single line", `import a from './a';`, Shape{}},
		{"one line feed", "a\nb", Shape{Multiline: true, LineCount: 1}},
		{"trailing line feed", "a\n", Shape{Multiline: true, LineCount: 1}},
		{"crlf counts once", "a\r\nb\r\nc", Shape{Multiline: true, LineCount: 2}},
		{"bare carriage return", "a\rb", Shape{Multiline: true, LineCount: 1}},
		{"unicode line separator", "a\u2028b\u2029c", Shape{Multiline: true, LineCount: 2}},
		{"blank lines", "\n\n\n", Shape{Multiline: true, LineCount: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, Classify(tt.text), "Classify(%q)", tt.text)
			req.Equal(tt.want.Multiline, IsMultiline(tt.text))
		})
	}
}

func TestBreaks(t *testing.T) {
	tests := []struct {
		text     string
		breaks   int
		lastLine int
	}{
		{"", 0, 0},
		{"abc", 0, 0},
		{"a\nbc", 1, 2},
		{"a\r\nb", 1, 3},
		{"a\r", 1, 2},
		{"a\u2028b", 1, 4},
	}

	for _, tt := range tests {
		req := require.New(t)
		breaks, lastLine := Breaks(tt.text)
		req.Equal(tt.breaks, breaks, "Breaks(%q)", tt.text)
		req.Equal(tt.lastLine, lastLine, "Breaks(%q)", tt.text)
	}
}

func TestLength(t *testing.T) {
	req := require.New(t)
	req.Equal(0, Length(""))
	req.Equal(13, Length("import './a';"))
	req.Equal(3, Length("äöü"), "length counts code points, not bytes")
}
