// internal/logging/rotate.go
//
// Boundary-based log rotation.
//
// The writer names files {prefix}-<period>.log and swaps the underlying
// sink when the period key changes: daily keys on the date, hourly on the
// date+hour, and never writes a single un-stamped file.  Lumberjack backs
// each period's file so a runaway writer inside one period still hits a
// size ceiling.
//
// Rotated files are never renamed; once the boundary passes they sit in
// the directory until retention cleanup removes them.
package logging

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
)

// maxFileSizeMB caps a single period's file.  Generous on purpose; the
// real rotation signal is the period boundary.
const maxFileSizeMB = 512

type rotatingWriter struct {
	dir      string
	prefix   string
	rotation string

	mu     sync.Mutex
	period string
	sink   *lumberjack.Logger
}

// newRotatingWriter validates the rotation policy and returns a writer
// that opens its first file lazily on first write.
func newRotatingWriter(dir, prefix, rotation string) (*rotatingWriter, error) {
	switch rotation {
	case "daily", "hourly", "never":
	default:
		return nil, fmt.Errorf("unsupported log rotation policy %q: valid policies are daily, hourly, never", rotation)
	}
	return &rotatingWriter{dir: dir, prefix: prefix, rotation: rotation}, nil
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := w.periodKey(time.Now())
	if w.sink == nil || key != w.period {
		if w.sink != nil {
			_ = w.sink.Close()
		}
		w.sink = &lumberjack.Logger{
			Filename: filepath.Join(w.dir, w.fileName(key)),
			MaxSize:  maxFileSizeMB,
		}
		w.period = key
	}
	return w.sink.Write(p)
}

// periodKey returns the timestamp component for the current boundary, or
// "" when rotation is disabled.
func (w *rotatingWriter) periodKey(t time.Time) string {
	switch w.rotation {
	case "daily":
		return t.Format("2006-01-02")
	case "hourly":
		return t.Format("2006-01-02-15")
	default:
		return ""
	}
}

func (w *rotatingWriter) fileName(periodKey string) string {
	if periodKey == "" {
		return w.prefix + ".log"
	}
	return w.prefix + "-" + periodKey + ".log"
}
