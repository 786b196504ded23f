package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// IsSourceFile checks if a file name has one of the given extensions
func IsSourceFile(filename string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	// type declarations carry no runtime code to order
	if strings.HasSuffix(strings.ToLower(filename), ".d.ts") {
		return false
	}
	return slices.Contains(extensions, ext)
}

// FindSourceFiles recursively finds all source files with the given extensions in a directory
func FindSourceFiles(root string, extensions, exclude []string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip excluded and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if slices.Contains(exclude, name) || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsSourceFile(filepath.Base(path), extensions) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
