package sandbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWithinAcceptsContainedPath(t *testing.T) {
	root := t.TempDir()
	resolved, err := Within(root, "sub/file.md")
	if err != nil {
		t.Fatalf("Within: %v", err)
	}
	if !strings.HasSuffix(resolved, filepath.Join("sub", "file.md")) {
		t.Errorf("resolved = %s", resolved)
	}
}

func TestWithinAcceptsRootItself(t *testing.T) {
	root := t.TempDir()
	if _, err := Within(root, "."); err != nil {
		t.Errorf("Within(root, .) failed: %v", err)
	}
}

func TestWithinRejectsEscape(t *testing.T) {
	root := t.TempDir()
	if _, err := Within(root, "../escape.md"); err == nil {
		t.Fatal("expected escape rejection")
	}
}

func TestWithinRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	link := filepath.Join(root, "link")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if _, err := Within(root, "link/file.md"); err == nil {
		t.Fatal("expected symlink escape rejection")
	}
}

func TestAtomicWriteCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.md")
	if err := AtomicWrite(path, []byte("content"), 0644); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content" {
		t.Errorf("read back %q, %v", data, err)
	}
}

func TestAtomicWriteReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	if err := AtomicWrite(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(path, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q", data)
	}
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := AtomicWrite(filepath.Join(dir, "out.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmpl-sync-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
