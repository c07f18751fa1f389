package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bianoble/tmpl-sync/internal/config"
)

func TestBackupCreatedOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(dest, []byte("old content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir, config.Target{Agent: "claude", RawPath: "CLAUDE.md", Enabled: true})
	s := testSyncer(cfg, "new content\n")

	result, err := s.Sync(Options{})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if result.Reports[0].Status != StatusUpdated {
		t.Errorf("status = %s", result.Reports[0].Status)
	}
	if got := readFile(t, dest); got != "new content\n" {
		t.Errorf("dest = %q", got)
	}
	if got := readFile(t, dest+".bak"); got != "old content\n" {
		t.Errorf("backup = %q", got)
	}
}

func TestBackupSlotSearchNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "CLAUDE.md")
	cfg := testConfig(dir, config.Target{Agent: "claude", RawPath: "CLAUDE.md", Enabled: true})

	versions := []string{"v0\n", "v1\n", "v2\n", "v3\n"}
	for i, text := range versions {
		if i == 0 {
			if err := os.WriteFile(dest, []byte(text), 0644); err != nil {
				t.Fatal(err)
			}
			continue
		}
		s := testSyncer(cfg, text)
		if _, err := s.Sync(Options{}); err != nil {
			t.Fatalf("sync %d: %v", i, err)
		}
	}

	if got := readFile(t, dest+".bak"); got != "v0\n" {
		t.Errorf(".bak = %q, want first original", got)
	}
	if got := readFile(t, dest+".bak.1"); got != "v1\n" {
		t.Errorf(".bak.1 = %q", got)
	}
	if got := readFile(t, dest+".bak.2"); got != "v2\n" {
		t.Errorf(".bak.2 = %q", got)
	}
	if got := readFile(t, dest); got != "v3\n" {
		t.Errorf("dest = %q", got)
	}
}

func TestBackupDisabled(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(dest, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir, config.Target{Agent: "claude", RawPath: "CLAUDE.md", Enabled: true})
	cfg.Options.Backup = false
	s := testSyncer(cfg, "new\n")

	if _, err := s.Sync(Options{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if _, err := os.Stat(dest + ".bak"); !os.IsNotExist(err) {
		t.Error("backup created despite backup=false")
	}
}

func TestBackupCustomSuffix(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "CLAUDE.md")
	if err := os.WriteFile(dest, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(dir, config.Target{Agent: "claude", RawPath: "CLAUDE.md", Enabled: true})
	cfg.Options.BackupSuffix = ".orig"
	s := testSyncer(cfg, "new\n")

	if _, err := s.Sync(Options{}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := readFile(t, dest+".orig"); got != "old\n" {
		t.Errorf(".orig = %q", got)
	}
}

func TestBackupExhaustion(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "x.md")
	if err := os.WriteFile(dest, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	// Occupy every slot.
	if err := os.WriteFile(dest+".bak", nil, 0644); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= maxBackupSlots; i++ {
		if err := os.WriteFile(fmt.Sprintf("%s.bak.%d", dest, i), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	err := backupFile(dest, ".bak")
	var berr *BackupExhaustionError
	if !errors.As(err, &berr) {
		t.Fatalf("expected BackupExhaustionError, got %v", err)
	}
}
