package grouping

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Group represents the import group an import path belongs to
type Group int

const (
	ModuleGroup Group = iota
	AbsoluteGroup
	RelativeGroup
)

func (g Group) String() string {
	switch g {
	case ModuleGroup:
		return "module"
	case AbsoluteGroup:
		return "absolute"
	case RelativeGroup:
		return "relative"
	}
	return "unknown"
}

const (
	// BaseDirectory is the project-relative directory absolute imports resolve against
	BaseDirectory = "src"

	probeCacheSize = 4096
)

// Extensions are the suffixes tried when probing for an absolute import.
// The empty suffix matches a directory or an extension-less file.
var Extensions = []string{"", ".ts", ".tsx"}

// Prober answers whether an import path names something under the absolute-import base
type Prober interface {
	Exists(importPath string) bool
}

// ProberFunc adapts a function to the Prober interface
type ProberFunc func(importPath string) bool

func (f ProberFunc) Exists(importPath string) bool { return f(importPath) }

// Of classifies importPath into its import group
func Of(importPath string, p Prober) Group {
	if strings.HasPrefix(importPath, ".") {
		return RelativeGroup
	}
	if importPath != "" && p != nil && p.Exists(importPath) {
		return AbsoluteGroup
	}
	return ModuleGroup
}

// FSProber checks the filesystem below a base directory. Answers are
// memoized for the prober's lifetime so that one run sees a consistent view.
type FSProber struct {
	base       string
	extensions []string
	cache      *lru.Cache[string, bool]
}

// NewFSProber creates a prober rooted at <projectRoot>/src
func NewFSProber(projectRoot string) *FSProber {
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, bool](probeCacheSize)
	return &FSProber{
		base:       filepath.Join(projectRoot, BaseDirectory),
		extensions: Extensions,
		cache:      cache,
	}
}

// Base returns the directory absolute imports resolve against
func (p *FSProber) Base() string {
	return p.base
}

// Exists reports whether base/importPath exists with any recognized extension
func (p *FSProber) Exists(importPath string) bool {
	if found, ok := p.cache.Get(importPath); ok {
		return found
	}
	found := p.probe(importPath)
	p.cache.Add(importPath, found)
	return found
}

func (p *FSProber) probe(importPath string) bool {
	if strings.ContainsRune(importPath, 0) {
		return false
	}
	for _, ext := range p.extensions {
		candidate := filepath.Join(p.base, filepath.FromSlash(importPath+ext))
		if _, err := os.Stat(candidate); err == nil {
			return true
		}
	}
	return false
}
