// Package syntax exposes the parts of a JavaScript/TypeScript syntax tree
// that the ordering rules inspect. Parsing is delegated to tree-sitter.
package syntax

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// Node types used by the provider
const (
	typeImport         = "import_statement"
	typeImportClause   = "import_clause"
	typeNamedImports   = "named_imports"
	typeNamespace      = "namespace_import"
	typeIdentifier     = "identifier"
	typeSpecifier      = "import_specifier"
	typeOpeningElement = "jsx_opening_element"
	typeSelfClosing    = "jsx_self_closing_element"
	typeJSXAttribute   = "jsx_attribute"
	typeObjectPattern  = "object_pattern"
)

// propertyTypes are the object pattern children that count as properties.
// Rest elements and comments are excluded.
var propertyTypes = map[string]bool{
	"shorthand_property_identifier_pattern": true,
	"pair_pattern":                          true,
	"object_assignment_pattern":             true,
}

// Node is a syntax node's kind, byte range and exact source text
type Node struct {
	Type  string
	Start int
	End   int
	Text  string
}

// Import is a top-level import statement
type Import struct {
	Node
	Path       string // unquoted module source
	Specifiers []Node // default, namespace and named bindings
	Named      []Node // named import specifiers only
}

// Container is a node whose children are ordered by a rule
type Container struct {
	Node
	Items []Node
}

// File is a parsed source file
type File struct {
	path     string
	lang     Language
	content  []byte
	tree     *sitter.Tree
	root     *sitter.Node
	imports  []*Import
	byStart  map[int]*Import
	elements []*Container
	patterns []*Container
}

// Parse parses content with the grammar matching path's extension
func Parse(ctx context.Context, path string, content []byte) (*File, error) {
	lang, err := LanguageFor(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pool := parserPools[lang]
	parser := pool.Get().(*sitter.Parser)
	defer pool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, err
	}

	f := &File{
		path:    path,
		lang:    lang,
		content: content,
		tree:    tree,
		root:    tree.RootNode(),
		byStart: make(map[int]*Import),
	}
	f.collectImports()
	f.walk(f.root)
	return f, nil
}

// Close releases the underlying tree
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Path returns the file path the source was parsed from
func (f *File) Path() string { return f.path }

// Language returns the grammar the file was parsed with
func (f *File) Language() Language { return f.lang }

// Content returns the parsed source
func (f *File) Content() []byte { return f.content }

// HasErrors reports whether the parser had to recover from syntax errors
func (f *File) HasErrors() bool { return f.root.HasError() }

// Imports returns the top-level import statements in source order
func (f *File) Imports() []*Import { return f.imports }

// JSXElements returns every JSX opening and self-closing tag with its attributes
func (f *File) JSXElements() []*Container { return f.elements }

// ObjectPatterns returns every object destructuring pattern with its properties
func (f *File) ObjectPatterns() []*Container { return f.patterns }

// ImportBefore returns the closest import statement that ends before offset,
// skipping any other statements and comments in between. It returns nil when
// no import precedes offset.
func (f *File) ImportBefore(offset int) *Import {
	pos := min(offset, len(f.content))
	for pos > 0 {
		stmt := f.statementAt(pos - 1)
		if stmt == nil {
			pos--
			continue
		}
		start := int(stmt.StartByte())
		if imp, ok := f.byStart[start]; ok {
			return imp
		}
		pos = start
	}
	return nil
}

// statementAt returns the top-level statement covering byte offset, or nil
// if the offset belongs to the program itself.
func (f *File) statementAt(offset int) *sitter.Node {
	at, err := safecast.Conv[uint32](offset)
	if err != nil {
		return nil
	}
	count := int(f.root.NamedChildCount())
	// top-level statements are ordered and disjoint
	i := sort.Search(count, func(i int) bool {
		return f.root.NamedChild(i).EndByte() > at
	})
	if i == count {
		return nil
	}
	if stmt := f.root.NamedChild(i); stmt.StartByte() <= at {
		return stmt
	}
	return nil
}

func (f *File) node(n *sitter.Node) Node {
	return Node{
		Type:  n.Type(),
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		Text:  n.Content(f.content),
	}
}

func (f *File) collectImports() {
	for i := 0; i < int(f.root.NamedChildCount()); i++ {
		child := f.root.NamedChild(i)
		if child.Type() != typeImport {
			continue
		}
		source := child.ChildByFieldName("source")
		if source == nil {
			// TypeScript `import x = require(...)` has no source field
			continue
		}
		imp := &Import{
			Node: f.node(child),
			Path: unquote(source.Content(f.content)),
		}
		f.collectSpecifiers(imp, child)
		f.imports = append(f.imports, imp)
		f.byStart[imp.Start] = imp
	}
}

func (f *File) collectSpecifiers(imp *Import, stmt *sitter.Node) {
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		clause := stmt.NamedChild(i)
		if clause.Type() != typeImportClause {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			binding := clause.NamedChild(j)
			switch binding.Type() {
			case typeIdentifier, typeNamespace:
				imp.Specifiers = append(imp.Specifiers, f.node(binding))
			case typeNamedImports:
				for k := 0; k < int(binding.NamedChildCount()); k++ {
					spec := binding.NamedChild(k)
					if spec.Type() != typeSpecifier {
						continue
					}
					imp.Specifiers = append(imp.Specifiers, f.node(spec))
					imp.Named = append(imp.Named, f.node(spec))
				}
			}
		}
	}
}

func (f *File) walk(n *sitter.Node) {
	switch n.Type() {
	case typeOpeningElement, typeSelfClosing:
		f.elements = append(f.elements, f.container(n, func(t string) bool { return t == typeJSXAttribute }))
	case typeObjectPattern:
		f.patterns = append(f.patterns, f.container(n, func(t string) bool { return propertyTypes[t] }))
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		f.walk(n.NamedChild(i))
	}
}

func (f *File) container(n *sitter.Node, keep func(string) bool) *Container {
	c := &Container{Node: f.node(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if keep(child.Type()) {
			c.Items = append(c.Items, f.node(child))
		}
	}
	return c
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return strings.Trim(s, `'"`)
}
