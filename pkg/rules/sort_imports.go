package rules

import (
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/grouping"
	"github.com/siyuan-infoblox/lensort/pkg/policy"
	"github.com/siyuan-infoblox/lensort/pkg/reorder"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// SortImports requires import statements to be ordered by length within
// their group. Each violation swaps one adjacent pair; repeated fix passes
// converge to a fully sorted list.
type SortImports struct{}

func (SortImports) Name() string        { return "sort-imports-by-length" }
func (SortImports) Description() string { return "Sort imports by length." }

const importMessage = "The import should be before the previous one."

func (r SortImports) Check(f *syntax.File, env *Env) []diag.Diagnostic {
	var prober grouping.Prober
	if env != nil {
		prober = env.Prober
	}

	var diagnostics []diag.Diagnostic
	for _, imp := range f.Imports() {
		prev := f.ImportBefore(imp.Start)
		if prev == nil {
			continue
		}

		current := describeImport(imp, prober)
		previous := describeImport(prev, prober)
		if policy.ImportChain.Check(current, previous) != policy.Violation {
			continue
		}

		diagnostics = append(diagnostics, diag.Diagnostic{
			Rule:      r.Name(),
			MessageID: MessageID,
			Message:   importMessage,
			Start:     imp.Start,
			End:       imp.End,
			Edits: reorder.Swap(
				reorder.Item{Start: prev.Start, End: prev.End, Text: prev.Text},
				reorder.Item{Start: imp.Start, End: imp.End, Text: imp.Text},
			),
		})
	}
	return diagnostics
}

func describeImport(imp *syntax.Import, prober grouping.Prober) policy.Descriptor {
	return policy.NewImport(imp.Text, imp.Path, len(imp.Specifiers), prober)
}
