// Package reorder computes text edits that permute sibling items in place.
package reorder

import (
	"sort"

	"github.com/siyuan-infoblox/lensort/pkg/policy"
)

// Item is one sibling's source range and the exact text it covers
type Item struct {
	Start int
	End   int
	Text  string
}

// Edit replaces bytes [Start, End) with NewText
type Edit struct {
	Start   int
	End     int
	NewText string
}

// Texts returns the text of each item in order
func Texts(items []Item) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}

// Sorted returns the item texts stably sorted by less
func Sorted(items []Item, less policy.Less) []string {
	texts := Texts(items)
	sort.SliceStable(texts, func(i, j int) bool {
		return less(texts[i], texts[j])
	})
	return texts
}

// Resort moves the item texts into the order given by less. Only positions
// whose text actually changes receive an edit; the bytes between items are
// never touched.
func Resort(items []Item, less policy.Less) []Edit {
	sorted := Sorted(items, less)
	var edits []Edit
	for i, item := range items {
		if sorted[i] == item.Text {
			continue
		}
		edits = append(edits, Edit{Start: item.Start, End: item.End, NewText: sorted[i]})
	}
	return edits
}

// Swap exchanges the text of two items
func Swap(previous, current Item) []Edit {
	return []Edit{
		{Start: current.Start, End: current.End, NewText: previous.Text},
		{Start: previous.Start, End: previous.End, NewText: current.Text},
	}
}
