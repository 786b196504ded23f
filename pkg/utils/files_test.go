package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "typescript file",
			filename: "index.ts",
			expected: true,
		},
		{
			name:     "tsx file with path",
			filename: "src/components/Button.tsx",
			expected: true,
		},
		{
			name:     "upper case extension",
			filename: "App.JSX",
			expected: true,
		},
		{
			name:     "test file should be included",
			filename: "Button.test.tsx",
			expected: true,
		},
		{
			name:     "declaration file is excluded",
			filename: "global.d.ts",
			expected: false,
		},
		{
			name:     "extension not configured",
			filename: "lib.mjs",
			expected: false,
		},
		{
			name:     "non-source file",
			filename: "README.md",
			expected: false,
		},
		{
			name:     "file with .ts in middle",
			filename: "file.ts.txt",
			expected: false,
		},
		{
			name:     "empty string",
			filename: "",
			expected: false,
		},
		{
			name:     "hidden source file",
			filename: ".eslintrc.js",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := IsSourceFile(tt.filename, testExtensions)
			req.Equal(tt.expected, result, "IsSourceFile(%q) = %v, want %v", tt.filename, result, tt.expected)
		})
	}
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create a temporary file
	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{
			name:      "existing directory",
			path:      tempDir,
			expected:  true,
			expectErr: false,
		},
		{
			name:      "existing file",
			path:      tempFile,
			expected:  false,
			expectErr: false,
		},
		{
			name:      "non-existent path",
			path:      "/non/existent/path",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "current directory",
			path:      ".",
			expected:  true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory structure for testing
	tempDir := t.TempDir()

	dirs := []string{
		"src/components",
		"src/utils",
		"node_modules/react",
		"dist",
		".git",
		".cache",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		req.NoError(err, "Failed to create directory %s: %v", dir, err)
	}

	files := map[string]string{
		"index.js":                    "export {}",
		"src/App.tsx":                 "export {}",
		"src/components/Button.jsx":   "export {}",
		"src/utils/math.ts":           "export {}",
		"src/utils/math.test.ts":      "export {}", // Should be included
		"src/types.d.ts":              "export {}", // Should be excluded (declarations)
		"node_modules/react/index.js": "export {}", // Should be excluded (excluded dir)
		"dist/bundle.js":              "export {}", // Should be excluded (excluded dir)
		".cache/tmp.js":               "export {}", // Should be excluded (hidden dir)
		"README.md":                   "# README",  // Should be excluded (not source)
		"src/styles.css":              "a {}",      // Should be excluded (not source)
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		err := os.WriteFile(fullPath, []byte(content), 0644)
		req.NoError(err, "Failed to create file %s: %v", filePath, err)
	}

	// Create empty directory for test
	err := os.Mkdir(filepath.Join(tempDir, "empty"), 0755)
	req.NoError(err, "Failed to create empty directory: %v", err)

	exclude := []string{"node_modules", "dist"}

	tests := []struct {
		name          string
		root          string
		expectedFiles []string
		expectErr     bool
	}{
		{
			name: "find source files in temp directory",
			root: tempDir,
			expectedFiles: []string{
				filepath.Join(tempDir, "index.js"),
				filepath.Join(tempDir, "src/App.tsx"),
				filepath.Join(tempDir, "src/components/Button.jsx"),
				filepath.Join(tempDir, "src/utils/math.test.ts"),
				filepath.Join(tempDir, "src/utils/math.ts"),
			},
		},
		{
			name:      "non-existent directory",
			root:      "/non/existent/path",
			expectErr: true,
		},
		{
			name: "empty directory",
			root: filepath.Join(tempDir, "empty"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := FindSourceFiles(tt.root, testExtensions, exclude)

			if tt.expectErr {
				req.Error(err, "FindSourceFiles(%q) expected error, got nil", tt.root)
				return
			}

			req.NoError(err, "FindSourceFiles(%q) unexpected error: %v", tt.root, err)
			req.ElementsMatch(tt.expectedFiles, result, "FindSourceFiles(%q)", tt.root)
		})
	}
}
