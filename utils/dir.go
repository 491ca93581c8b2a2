package utils

import (
	"os"
	"path/filepath"
)

// ParseWorkDir resolves workDir to an absolute directory, falling back to
// the current directory when it is empty or not a directory.
func ParseWorkDir(workDir string) string {
	cwd, _ := os.Getwd()
	if workDir == "" {
		return cwd
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return cwd
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return cwd
	}
	return abs
}
