// Package diag defines rule diagnostics and applies their fixes.
package diag

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/siyuan-infoblox/lensort/pkg/reorder"
	"github.com/siyuan-infoblox/lensort/pkg/shape"
)

// Severity indicates how a rule's diagnostics are reported
type Severity int

const (
	SevOff Severity = iota
	SevWarn
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevOff:
		return "off"
	case SevWarn:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity parses a configured severity (off, warn, error)
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return SevOff, nil
	case "warn", "warning", "1":
		return SevWarn, nil
	case "error", "2":
		return SevError, nil
	}
	return SevOff, fmt.Errorf("unknown severity %q", s)
}

// Diagnostic is one ordering violation with the edits that fix it
type Diagnostic struct {
	Rule      string
	MessageID string
	Message   string
	Severity  Severity
	Start     int // byte offset of the reported range
	End       int
	Edits     []reorder.Edit
}

// HasFix reports whether the diagnostic carries fix edits
func (d Diagnostic) HasFix() bool {
	return len(d.Edits) > 0
}

// Apply applies the fixes of diagnostics to content in source order. A fix
// is applied whole or not at all: if any of its edits overlaps an edit that
// was already accepted, the fix is skipped. It returns the new content and
// the number of fixes applied.
func Apply(content string, diagnostics []Diagnostic) (string, int) {
	fixes := make([]Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		if d.HasFix() {
			fixes = append(fixes, d)
		}
	}
	sort.SliceStable(fixes, func(i, j int) bool {
		return firstEdit(fixes[i]) < firstEdit(fixes[j])
	})

	var accepted []reorder.Edit
	applied := 0
	for _, d := range fixes {
		if !valid(d.Edits, len(content)) || overlapsAny(d.Edits, accepted) {
			continue
		}
		accepted = append(accepted, d.Edits...)
		applied++
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start > accepted[j].Start
	})
	out := content
	for _, e := range accepted {
		out = out[:e.Start] + e.NewText + out[e.End:]
	}
	return out, applied
}

func firstEdit(d Diagnostic) int {
	first := d.Edits[0].Start
	for _, e := range d.Edits[1:] {
		first = min(first, e.Start)
	}
	return first
}

func valid(edits []reorder.Edit, size int) bool {
	for i, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > size {
			return false
		}
		if overlapsAny(edits[i+1:], []reorder.Edit{e}) {
			return false
		}
	}
	return true
}

func overlapsAny(edits, others []reorder.Edit) bool {
	for _, a := range edits {
		for _, b := range others {
			if a.Start < b.End && b.Start < a.End {
				return true
			}
		}
	}
	return false
}

// Position converts a byte offset into a 1-based line and column. Columns
// count characters, not bytes.
func Position(content string, offset int) (line, col int) {
	offset = max(0, min(offset, len(content)))
	before := content[:offset]
	breaks, lineStart := shape.Breaks(before)
	return breaks + 1, utf8.RuneCountInString(before[lineStart:]) + 1
}
