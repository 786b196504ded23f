package rules

import (
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/policy"
	"github.com/siyuan-infoblox/lensort/pkg/shape"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// SortObjectDestructuring orders the properties of multi-line destructuring patterns
type SortObjectDestructuring struct{}

func (SortObjectDestructuring) Name() string { return "sort-object-destructuring" }
func (SortObjectDestructuring) Description() string {
	return "Sort Object Destructuring properties by length."
}

func (r SortObjectDestructuring) Check(f *syntax.File, _ *Env) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, pattern := range f.ObjectPatterns() {
		if !shape.IsMultiline(pattern.Text) {
			continue
		}
		// the report starts at the item the first misplaced one should precede
		d, ok := checkContainer(r.Name(), "Object Destructuring properties should be sorted by length.",
			pattern.Items, policy.ByLengthThenLines, func(failed int) int { return failed - 1 })
		if ok {
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics
}
