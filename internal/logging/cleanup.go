// internal/logging/cleanup.go
//
// Retention cleanup for rotated log files.
//
/*
Context
--------
Cleanup enforces MaxFiles independently of sink construction: it lists
files in the log directory matching the env-qualified prefix and the
".log" suffix, keeps the MaxFiles most-recently-modified, and deletes
the rest.  The currently-active file is by construction the newest
match, so retention always keeps it.

Cleanup may run concurrently with logging and with other cleanup
invocations.  Deletion is best-effort: a file that vanished between
listing and removal is fine, and any other per-file failure is logged
as a warning without aborting the pass.

StartCleanupLoop runs one pass at startup and, when CleanupInterval is
non-zero, keeps running on that hour cadence for the life of the
process.
*/
package logging

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/authd/internal/config"
	"github.com/yanizio/authd/internal/metrics"
)

// Cleanup deletes the oldest rotated files beyond MaxFiles.  MaxFiles 0
// means unlimited retention; a missing directory is a no-op.
func Cleanup(cfg *config.LoggingConfig) error {
	if cfg.MaxFiles == 0 {
		return nil
	}

	entries, err := os.ReadDir(cfg.FileDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	metrics.LogCleanupRunsTotal.Inc()

	prefix := cfg.FilePrefixWithEnv()

	type logFile struct {
		path string
		mod  time.Time
	}
	var files []logFile
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // raced with deletion
		}
		files = append(files, logFile{
			path: filepath.Join(cfg.FileDir, name),
			mod:  info.ModTime(),
		})
	}
	if len(files) <= cfg.MaxFiles {
		return nil
	}

	// Newest first; everything past MaxFiles goes.
	sort.Slice(files, func(i, j int) bool { return files[i].mod.After(files[j].mod) })

	for _, f := range files[cfg.MaxFiles:] {
		if err := os.Remove(f.path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue // someone else got there first
			}
			zap.S().Warnw("log cleanup: remove failed", "file", f.path, "err", err)
			continue
		}
		metrics.LogFilesDeletedTotal.Inc()
		zap.S().Infow("log cleanup: removed rotated file", "file", f.path)
	}
	return nil
}

// StartCleanupLoop performs the startup pass and schedules periodic ones.
// Interval 0 means clean once at startup only.  The loop goroutine is
// process-scoped; there is no stop handle.
func StartCleanupLoop(cfg *config.LoggingConfig) {
	if !cfg.CleanupEnabled {
		return
	}
	if err := Cleanup(cfg); err != nil {
		zap.S().Warnw("log cleanup failed", "err", err)
	}
	if cfg.CleanupInterval == 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.CleanupInterval) * time.Hour)
		for range ticker.C {
			if err := Cleanup(cfg); err != nil {
				zap.S().Warnw("log cleanup failed", "err", err)
			}
		}
	}()
}
