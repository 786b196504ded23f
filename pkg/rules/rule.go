// Package rules holds the ordering checkers and their registry.
package rules

import (
	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/grouping"
	"github.com/siyuan-infoblox/lensort/pkg/policy"
	"github.com/siyuan-infoblox/lensort/pkg/reorder"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// MessageID is the message identifier every ordering rule reports with
const MessageID = "incorrectOrder"

// Env carries the external capabilities a rule may need
type Env struct {
	Prober grouping.Prober // resolves absolute imports, nil treats every path as a module
}

// Rule checks one kind of container in a parsed file
type Rule interface {
	// Name returns the config key for this rule (e.g., "sort-jsx-props").
	Name() string

	Description() string

	// Check returns one diagnostic per violating container. Severity is left
	// for the caller to fill in.
	Check(f *syntax.File, env *Env) []diag.Diagnostic
}

func items(nodes []syntax.Node) []reorder.Item {
	out := make([]reorder.Item, len(nodes))
	for i, n := range nodes {
		out[i] = reorder.Item{Start: n.Start, End: n.End, Text: n.Text}
	}
	return out
}

// checkContainer resorts a container's items when any adjacent pair is out
// of order. The report spans from the item at fromIndex(violation) to the
// last item.
func checkContainer(rule, message string, nodes []syntax.Node, less policy.Less, fromIndex func(int) int) (diag.Diagnostic, bool) {
	if len(nodes) < 2 {
		return diag.Diagnostic{}, false
	}
	list := items(nodes)
	failed := policy.FirstViolation(reorder.Texts(list), less)
	if failed < 0 {
		return diag.Diagnostic{}, false
	}
	return diag.Diagnostic{
		Rule:      rule,
		MessageID: MessageID,
		Message:   message,
		Start:     nodes[fromIndex(failed)].Start,
		End:       nodes[len(nodes)-1].End,
		Edits:     reorder.Resort(list, less),
	}, true
}

func fromFirst(int) int { return 0 }
