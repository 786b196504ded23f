package rules

import (
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/policy"
	"github.com/siyuan-infoblox/lensort/pkg/shape"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// SortJSXProps orders the attributes of multi-line JSX tags
type SortJSXProps struct{}

func (SortJSXProps) Name() string        { return "sort-jsx-props" }
func (SortJSXProps) Description() string { return "Sort JSX attributes by length." }

func (r SortJSXProps) Check(f *syntax.File, _ *Env) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, tag := range f.JSXElements() {
		if !shape.IsMultiline(tag.Text) {
			continue
		}
		d, ok := checkContainer(r.Name(), "The attributes should be sorted by length.",
			tag.Items, policy.ByLengthThenLines, fromFirst)
		if ok {
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics
}
