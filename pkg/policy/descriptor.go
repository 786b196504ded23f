package policy

import (
	"github.com/siyuan-infoblox/lensort/pkg/grouping"
	"github.com/siyuan-infoblox/lensort/pkg/shape"
	"github.com/siyuan-infoblox/lensort/pkg/std"
)

// Descriptor is one orderable item of a container: an import statement,
// a JSX attribute, a named import specifier or a destructured property.
type Descriptor struct {
	Text  string
	Shape shape.Shape

	// Import statements only
	Path           string
	Group          grouping.Group
	HasGroup       bool
	Static         bool
	StaticRank     int // position in std.StaticPackages, -1 when not static
	SpecifierCount int
}

// NewItem describes a non-import item from its source text
func NewItem(text string) Descriptor {
	return Descriptor{
		Text:       text,
		Shape:      shape.Classify(text),
		StaticRank: -1,
	}
}

// NewImport describes an import statement. importPath is the unquoted
// module source and specifierCount the number of imported bindings.
func NewImport(text, importPath string, specifierCount int, p grouping.Prober) Descriptor {
	d := NewItem(text)
	d.Path = importPath
	d.Group = grouping.Of(importPath, p)
	d.HasGroup = true
	d.StaticRank, d.Static = std.StaticRank(importPath)
	d.SpecifierCount = specifierCount
	return d
}

// Length returns the comparison length of the item text
func (d Descriptor) Length() int {
	return shape.Length(d.Text)
}
