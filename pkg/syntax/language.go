package syntax

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedLanguage is returned for files whose extension has no grammar
var ErrUnsupportedLanguage = errors.New("unsupported source language")

// Language identifies the grammar a file is parsed with
type Language int

const (
	JavaScript Language = iota
	TypeScript
	TSX
)

func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	}
	return "unknown"
}

// Extensions lists every file extension the provider can parse
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// LanguageFor picks the grammar for a file path by extension
func LanguageFor(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return JavaScript, nil
	case ".ts", ".mts", ".cts":
		return TypeScript, nil
	case ".tsx":
		return TSX, nil
	}
	return 0, ErrUnsupportedLanguage
}

// Parsers are not safe for concurrent use, so each grammar keeps a pool.
var parserPools = map[Language]*sync.Pool{
	JavaScript: newParserPool(javascript.GetLanguage()),
	TypeScript: newParserPool(typescript.GetLanguage()),
	TSX:        newParserPool(tsx.GetLanguage()),
}

func newParserPool(lang *sitter.Language) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			p := sitter.NewParser()
			p.SetLanguage(lang)
			return p
		},
	}
}
