// Package report prints diagnostics and diffs.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/siyuan-infoblox/lensort/pkg/diag"
)

// FileResult is the outcome of linting one file
type FileResult struct {
	Path        string
	Content     string // content the diagnostics refer to
	Original    string
	Proposed    string // content with every fix applied
	Diagnostics []diag.Diagnostic
	Fixed       bool
	Err         error
}

// Text writes human-readable diagnostics
type Text struct {
	w        io.Writer
	path     *color.Color
	warn     *color.Color
	err      *color.Color
	dim      *color.Color
	problems int
	errors   int
	fixed    int
}

// NewText creates a text reporter. Colors are disabled when noColor is set
// or the output is not a terminal.
func NewText(w io.Writer, noColor bool) *Text {
	t := &Text{
		w:    w,
		path: color.New(color.Bold, color.Underline),
		warn: color.New(color.FgYellow),
		err:  color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{t.path, t.warn, t.err, t.dim} {
			c.DisableColor()
		}
	}
	return t
}

// File reports every diagnostic of a file result
func (t *Text) File(res FileResult) {
	if res.Fixed {
		t.fixed++
	}
	if res.Err != nil {
		t.errors++
		fmt.Fprintf(t.w, "%s\n  %s %v\n", t.path.Sprint(res.Path), t.err.Sprint("error"), res.Err)
		return
	}
	if len(res.Diagnostics) == 0 {
		return
	}

	fmt.Fprintln(t.w, t.path.Sprint(res.Path))
	for _, d := range res.Diagnostics {
		t.problems++
		if d.Severity == diag.SevError {
			t.errors++
		}
		line, col := diag.Position(res.Content, d.Start)
		fmt.Fprintf(t.w, "  %s  %s  %s  %s\n",
			t.dim.Sprintf("%d:%d", line, col),
			t.severity(d.Severity),
			d.Message,
			t.dim.Sprint(d.Rule))
	}
}

func (t *Text) severity(s diag.Severity) string {
	if s == diag.SevError {
		return t.err.Sprint(s.String())
	}
	return t.warn.Sprint(s.String())
}

// Summary writes the closing totals line
func (t *Text) Summary(files int) {
	fmt.Fprintf(t.w, "\n%d files checked, %d problems", files, t.problems)
	if t.fixed > 0 {
		fmt.Fprintf(t.w, ", %d files fixed", t.fixed)
	}
	fmt.Fprintln(t.w)
}

// Problems returns how many diagnostics were reported
func (t *Text) Problems() int { return t.problems }

// Errors returns how many error-severity diagnostics and file failures were reported
func (t *Text) Errors() int { return t.errors }

// Diff returns a unified diff between the original and the fixed content
// of a file, or an empty string when nothing changed.
func Diff(path, original, fixed string) (string, error) {
	if original == fixed {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
