package utils

import (
	"os"
	"path/filepath"
)

const maxParentLookups = 20 // Prevent infinite loop

// GetProjectRoot returns the nearest directory at or above path holding a
// package.json. It returns an empty string if there is none.
func GetProjectRoot(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for range maxParentLookups {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
