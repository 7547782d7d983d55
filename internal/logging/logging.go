// internal/logging/logging.go
//
// Structured logging bootstrap (Zap).
//
/*
Context
--------
Init turns a validated LoggingConfig into installed sinks.  The
(console, file) booleans span four states; with neither sink enabled
initialization fails before anything is constructed, otherwise each
requested sink is built exactly once per process lifetime.

The console sink is for humans: "pretty" is a colorized multi-line-ish
development encoder, "compact" a terse single-line one.  The file sink
is for machines and always writes one JSON record per line, whatever
the console does.

Usage
-----

	log, err := logging.Init(&cfg.Logging)
	if err != nil { … }
	log.Infow("server online", "addr", cfg.ServerAddr())

Notes
-----
  • The file sink sits behind a BufferedWriteSyncer whose flush worker
    is process-scoped by design: it is started once and never stopped,
    so buffered records keep draining for the remaining process
    lifetime.  This is accepted resource behaviour, not a leak to fix.
  • Re-initialization is not supported; callers must not invoke Init
    twice.
  • The logger is installed globally via zap.ReplaceGlobals, so zap.L()
    and zap.S() work everywhere after startup.
*/
package logging

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yanizio/authd/internal/config"
)

// flushInterval is how often the background worker drains the file buffer.
const flushInterval = time.Second

// Init builds the configured sinks and installs the process-wide logger.
func Init(cfg *config.LoggingConfig) (*zap.SugaredLogger, error) {
	if !cfg.Console && !cfg.File {
		return nil, errors.New("at least one of console or file logging must be enabled")
	}

	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core

	if cfg.Console {
		cores = append(cores, zapcore.NewCore(
			consoleEncoder(cfg.ConsoleFormat),
			zapcore.Lock(os.Stdout),
			lvl,
		))
	}

	if cfg.File {
		sink, err := fileSink(cfg)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig()),
			sink,
			lvl,
		))
	}

	z := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(z)

	s := z.Sugar()
	s.Infow("logging online",
		"level", cfg.Level,
		"console", cfg.Console,
		"console_format", cfg.ConsoleFormat,
		"file", cfg.File,
	)
	if cfg.File {
		s.Infow("file sink configured",
			"dir", cfg.FileDir,
			"prefix", cfg.FilePrefixWithEnv(),
			"rotation", cfg.Rotation,
			"max_files", cfg.MaxFiles,
		)
	}
	return s, nil
}

// parseLevel maps config levels to zap levels.  "trace" has no zap
// counterpart and rides on debug.
func parseLevel(level string) (zapcore.Level, error) {
	if level == "trace" {
		return zapcore.DebugLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// consoleEncoder selects the human-facing encoder.  Anything other than
// "pretty" renders compact; the section validator has already rejected
// unknown values on the load path.
func consoleEncoder(format string) zapcore.Encoder {
	if format == "pretty" {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
}

// fileSink builds the rotating, buffered file writer.  The rotation policy
// is validated here, at sink-construction time, because it is meaningless
// unless file output is enabled.
func fileSink(cfg *config.LoggingConfig) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(cfg.FileDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", cfg.FileDir, err)
	}
	rw, err := newRotatingWriter(cfg.FileDir, cfg.FilePrefixWithEnv(), cfg.Rotation)
	if err != nil {
		return nil, err
	}
	// The flusher goroutine lives for the rest of the process; Stop is
	// intentionally never called.
	return &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(rw),
		FlushInterval: flushInterval,
	}, nil
}
