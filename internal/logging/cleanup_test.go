// internal/logging/cleanup_test.go
//
// Retention cleanup tests against a real temp directory.

package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yanizio/authd/internal/config"
)

// writeStamped creates a file and backdates its mtime by age.
func writeStamped(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	return path
}

func cleanupConfig(dir string, maxFiles int) *config.LoggingConfig {
	return &config.LoggingConfig{
		Level:      "info", // env-qualified prefix resolves to app-prod
		FileDir:    dir,
		FilePrefix: "app",
		MaxFiles:   maxFiles,
	}
}

func TestCleanupKeepsNewest(t *testing.T) {
	dir := t.TempDir()

	// Five matching rotated files, oldest first.
	var paths []string
	for i, name := range []string{
		"app-prod-2025-01-01.log",
		"app-prod-2025-01-02.log",
		"app-prod-2025-01-03.log",
		"app-prod-2025-01-04.log",
		"app-prod-2025-01-05.log",
	} {
		paths = append(paths, writeStamped(t, dir, name, time.Duration(5-i)*time.Hour))
	}

	// Non-matching neighbours must never be touched.
	wrongPrefix := writeStamped(t, dir, "other-2025-01-01.log", 100*time.Hour)
	wrongSuffix := writeStamped(t, dir, "app-prod-2025-01-01.txt", 100*time.Hour)
	devPrefix := writeStamped(t, dir, "app-dev-2025-01-01.log", 100*time.Hour)

	if err := Cleanup(cleanupConfig(dir, 3)); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	for _, p := range paths[:2] {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", filepath.Base(p))
		}
	}
	for _, p := range paths[2:] {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should have been retained: %v", filepath.Base(p), err)
		}
	}
	for _, p := range []string{wrongPrefix, wrongSuffix, devPrefix} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("non-matching file %s was removed", filepath.Base(p))
		}
	}
}

func TestCleanupUnlimitedRetention(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeStamped(t, dir, "app-prod-2025-01-0"+string(rune('0'+i))+".log", time.Duration(i)*time.Hour)
	}

	if err := Cleanup(cleanupConfig(dir, 0)); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("max_files=0 removed files: %d left, want 10", len(entries))
	}
}

func TestCleanupMissingDirectory(t *testing.T) {
	cfg := cleanupConfig(filepath.Join(t.TempDir(), "nope"), 3)
	if err := Cleanup(cfg); err != nil {
		t.Fatalf("missing directory must be a no-op, got %v", err)
	}
}

func TestCleanupAtOrBelowLimit(t *testing.T) {
	dir := t.TempDir()
	writeStamped(t, dir, "app-prod-2025-01-01.log", time.Hour)
	writeStamped(t, dir, "app-prod-2025-01-02.log", 2*time.Hour)

	if err := Cleanup(cleanupConfig(dir, 3)); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Fatalf("below-limit cleanup removed files: %d left, want 2", len(entries))
	}
}

// Running the pass twice must be idempotent.
func TestCleanupIdempotent(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeStamped(t, dir, "app-prod-2025-02-0"+string(rune('1'+i))+".log", time.Duration(5-i)*time.Hour)
	}

	cfg := cleanupConfig(dir, 3)
	if err := Cleanup(cfg); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if err := Cleanup(cfg); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 3 {
		t.Fatalf("%d files left, want 3", len(entries))
	}
}
