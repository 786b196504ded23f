package policy

import "math"

// ImportChain is the ordering policy for a file's import statements.
// Ordering is only enforced within one import group.
var ImportChain = Chain{
	Exit: []Predicate{
		differentGroups,
		previousStaticOnly,
	},
	Violation: []Predicate{
		staticOutOfOrder,
		staticAfterNonStatic,
		multilineBeforeSingle,
		previousHasMoreSpecifiers,
		previousLonger,
	},
}

func differentGroups(current, previous Descriptor) bool {
	return current.Group != previous.Group
}

// A static import anchors the top of its group; nothing after it is compared against it.
func previousStaticOnly(current, previous Descriptor) bool {
	return previous.Static && !current.Static
}

func staticOutOfOrder(current, previous Descriptor) bool {
	return current.Static && previous.Static && current.StaticRank < previous.StaticRank
}

func staticAfterNonStatic(current, previous Descriptor) bool {
	return current.Static && !previous.Static
}

// sameRank holds when the allow-list does not already order the pair.
// Shape and size only break ties between imports of the same rank.
func sameRank(current, previous Descriptor) bool {
	return staticKey(current) == staticKey(previous)
}

func multilineBeforeSingle(current, previous Descriptor) bool {
	return sameRank(current, previous) &&
		previous.Shape.Multiline && !current.Shape.Multiline
}

// Multi-line text length is dominated by formatting, so specifier count decides.
func previousHasMoreSpecifiers(current, previous Descriptor) bool {
	return sameRank(current, previous) &&
		current.Shape.Multiline && previous.Shape.Multiline &&
		previous.SpecifierCount > current.SpecifierCount
}

func previousLonger(current, previous Descriptor) bool {
	return sameRank(current, previous) &&
		!current.Shape.Multiline && !previous.Shape.Multiline &&
		previous.Length() > current.Length()
}

// staticKey ranks static imports by allow-list position and everything else last
func staticKey(d Descriptor) int {
	if d.Static {
		return d.StaticRank
	}
	return math.MaxInt
}

// ImportLess reports whether a must come strictly before b. It expresses
// ImportChain as ranking keys: group, static rank, then shape and size.
// Imports of different groups are unordered.
func ImportLess(a, b Descriptor) bool {
	if a.Group != b.Group {
		return false
	}
	if ka, kb := staticKey(a), staticKey(b); ka != kb {
		return ka < kb
	}
	if a.Shape.Multiline != b.Shape.Multiline {
		return !a.Shape.Multiline
	}
	if a.Shape.Multiline {
		return a.SpecifierCount < b.SpecifierCount
	}
	return a.Length() < b.Length()
}
