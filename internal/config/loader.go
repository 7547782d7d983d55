// internal/config/loader.go
//
// Layered configuration loader.
//
/*
Context
--------
Load builds one fully-validated AppConfig from four layers (highest
precedence last):

  1. Compiled-in defaults (Default()).
  2. Optional YAML file — `config.yaml` in the working directory, else
     `config/default.yaml`.  A missing file is fine; a malformed one is
     fatal.
  3. Environment variables prefixed `APP_`, where the first underscore
     after the prefix separates section from field
     (`APP_DATABASE_MAX_CONNECTIONS` → database.max_connections).
  4. Dedicated secret variables (DATABASE_URL, JWT_SECRET, REDIS_URL,
     LOG_FILE_DIR, LOG_ROTATION, LOG_CONSOLE), applied per section via
     ApplyEnvOverrides.  These win unconditionally.

An optional `.env` file is folded into the process environment first via
godotenv, so both env layers see it.

After merging, every section extracts its subtree (LoadFromValue), then
overrides and validation run in the fixed section order, stopping at the
first failure with the section name attached.

Instrumentation
---------------
Early boot logs go through zap.S(); the file logger is not installed yet
at this point, so they land on the bootstrap console.

Notes
-----
  • Loading is synchronous and runs once before anything else starts.
    There is no partial result: Load returns a complete aggregate or an
    error.
  • The prefixed overlay reads the real process environment through
    koanf's env provider.  The dedicated overrides go through the Env
    collaborator so tests can inject a fixed map.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	envPrefix    = "APP_"
	filePath     = "config.yaml"
	fallbackPath = "config/default.yaml"
)

// Loader carries the knobs tests need to vary.  Zero fields fall back to
// the production defaults.
type Loader struct {
	Path     string // primary config file
	Fallback string // used when Path does not exist
	Env      Env    // dedicated-override lookups; OSEnv when nil
}

// Load reads .env, the YAML file, and both env layers, then validates.
// Equivalent to (&Loader{}).Load().
func Load() (*AppConfig, error) {
	return (&Loader{}).Load()
}

// Load produces one fully-populated, validated AppConfig.
func (l *Loader) Load() (*AppConfig, error) {
	// .env (optional, no error if missing).
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := l.resolvePath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			zap.S().Errorw("config file load failed", "file", path, "err", err)
			return nil, &ParseError{Path: path, Err: err}
		}
		zap.S().Debugw("config file loaded", "file", path)
	}

	// Prefixed overlay: APP_SERVER_PORT → server.port.  Only the first
	// underscore separates section from field, so multi-word fields keep
	// their underscores (APP_DATABASE_MAX_CONNECTIONS →
	// database.max_connections).
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, &ParseError{Path: "environment", Err: err}
	}

	cfg := Default()
	for _, sec := range cfg.sections() {
		if err := sec.LoadFromValue(k.Get(sec.Name())); err != nil {
			return nil, &SectionError{Section: sec.Name(), Err: err}
		}
	}

	lookup := l.env()
	for _, sec := range cfg.sections() {
		if err := sec.ApplyEnvOverrides(lookup); err != nil {
			return nil, &SectionError{Section: sec.Name(), Err: err}
		}
	}

	// Mandatory values must have resolved somewhere in the chain by now.
	if cfg.Database.URL == "" {
		return nil, &MissingVarError{Var: "DATABASE_URL"}
	}
	if cfg.Secrets.JWTSecret == "" {
		return nil, &MissingVarError{Var: "JWT_SECRET"}
	}

	for _, sec := range cfg.sections() {
		if err := sec.Validate(); err != nil {
			zap.S().Errorw("config validation failed", "section", sec.Name(), "err", err)
			return nil, &SectionError{Section: sec.Name(), Err: err}
		}
	}

	zap.S().Infow("config loaded",
		"listen_addr", cfg.ServerAddr(),
		"log_level", cfg.Logging.Level,
		"file_logging", cfg.Logging.File,
	)
	return cfg, nil
}

func (l *Loader) resolvePath() string {
	primary, fallback := l.Path, l.Fallback
	if primary == "" {
		primary = filePath
	}
	if fallback == "" {
		fallback = filepath.FromSlash(fallbackPath)
	}
	if _, err := os.Stat(primary); err == nil {
		return primary
	}
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return ""
}

func (l *Loader) env() Env {
	if l.Env != nil {
		return l.Env
	}
	return OSEnv{}
}
