package rules

import (
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/policy"
	"github.com/siyuan-infoblox/lensort/pkg/shape"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// SortNamedImports orders the named specifiers of multi-line import statements
type SortNamedImports struct{}

func (SortNamedImports) Name() string        { return "sort-named-imports" }
func (SortNamedImports) Description() string { return "Sort named imports by length." }

func (r SortNamedImports) Check(f *syntax.File, _ *Env) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, imp := range f.Imports() {
		if !shape.IsMultiline(imp.Text) {
			continue
		}
		d, ok := checkContainer(r.Name(), "The named imports should be sorted by length.",
			imp.Named, policy.ByLength, fromFirst)
		if ok {
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics
}
