package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseWorkDir(t *testing.T) {
	dir := t.TempDir()
	if got := ParseWorkDir(dir); got != dir {
		t.Errorf("ParseWorkDir(%q) = %q", dir, got)
	}

	cwd, _ := os.Getwd()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{file, filepath.Join(dir, "missing")} {
		if got := ParseWorkDir(in); got != cwd {
			t.Errorf("ParseWorkDir(%q) = %q, want cwd %q", in, got, cwd)
		}
	}
}
