// internal/config/logging.go
//
// Logging section: level, sinks, rotation, and retention cleanup.
//
/*
Context
--------
The internal/logging package consumes this section twice: once to build
the sinks (Init) and again, independently, to enforce retention
(Cleanup).  Rotation policy strings are validated at sink-construction
time rather than here, because they only mean anything when the file
sink is enabled.

Notes
-----
  • cleanup_interval accepts the flexible hour syntax from interval.go,
    and a malformed value fails the load even though every other field
    in this section silently keeps its default on a bad type.  That
    asymmetry is long-standing operator-facing behaviour; tests pin it.
  • LOG_FILE_DIR force-enables the file sink so production deployments
    can turn on file logging with a single variable.
*/
package config

import (
	"fmt"
	"strconv"
)

// LoggingConfig holds sink, rotation, and cleanup settings.
type LoggingConfig struct {
	Level         string
	ConsoleFormat string // pretty | compact; the file sink is always JSON
	Console       bool
	File          bool
	FileDir       string
	FilePrefix    string
	Rotation      string // daily | hourly | never
	MaxFiles      int    // 0 = unlimited retention
	CleanupEnabled  bool
	CleanupInterval int // hours; 0 = clean once at startup
}

func defaultLogging() LoggingConfig {
	return LoggingConfig{
		Level:           "info",
		ConsoleFormat:   "pretty",
		Console:         true,
		File:            false,
		FileDir:         "./logs",
		FilePrefix:      "app",
		Rotation:        "daily",
		MaxFiles:        30,
		CleanupEnabled:  true,
		CleanupInterval: 168,
	}
}

// FilePrefixWithEnv returns the on-disk prefix qualified by environment:
// "-dev" when the level is trace or debug, "-prod" otherwise.
func (c *LoggingConfig) FilePrefixWithEnv() string {
	switch c.Level {
	case "trace", "debug":
		return c.FilePrefix + "-dev"
	default:
		return c.FilePrefix + "-prod"
	}
}

func (c *LoggingConfig) Name() string { return "logging" }

func (c *LoggingConfig) LoadFromValue(value any) error {
	m, err := subtree(c.Name(), value)
	if err != nil {
		return err
	}
	if v, ok := strVal(m, "level"); ok {
		c.Level = v
	}
	if v, ok := strVal(m, "console_format"); ok {
		c.ConsoleFormat = v
	}
	if v, ok := boolVal(m, "console"); ok {
		c.Console = v
	}
	if v, ok := boolVal(m, "file"); ok {
		c.File = v
	}
	if v, ok := strVal(m, "file_dir"); ok {
		c.FileDir = v
	}
	if v, ok := strVal(m, "file_prefix"); ok {
		c.FilePrefix = v
	}
	if v, ok := strVal(m, "rotation"); ok {
		c.Rotation = v
	}
	if v, ok := intVal(m, "max_files"); ok {
		c.MaxFiles = v
	}
	if v, ok := boolVal(m, "cleanup_enabled"); ok {
		c.CleanupEnabled = v
	}
	if raw, present := m["cleanup_interval"]; present {
		hours, err := ParseInterval(raw)
		if err != nil {
			return err
		}
		c.CleanupInterval = hours
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.ConsoleFormat {
	case "pretty", "compact":
	default:
		return fmt.Errorf("invalid console format %q", c.ConsoleFormat)
	}
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must not be negative, got %d", c.MaxFiles)
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("cleanup_interval must not be negative, got %d", c.CleanupInterval)
	}
	return nil
}

func (c *LoggingConfig) RequiredEnvVars() []string { return nil }

func (c *LoggingConfig) ApplyEnvOverrides(env Env) error {
	if v, ok := env.Lookup("LOG_FILE_DIR"); ok && v != "" {
		c.FileDir = v
		c.File = true
	}
	if v, ok := env.Lookup("LOG_ROTATION"); ok && v != "" {
		c.Rotation = v
	}
	if v, ok := env.Lookup("LOG_CONSOLE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			b = true
		}
		c.Console = b
	}
	return nil
}
