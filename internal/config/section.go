// internal/config/section.go
//
// Section capability contract and environment lookup collaborator.
//
/*
Context
--------
The aggregate in model.go does not know how many configuration groups
exist or what they contain.  Each group implements Section, and the
loader drives the same four-step sequence over all of them: lenient
extraction from the merged tree, env-var overrides, then validation.
Adding a new group means implementing Section and appending it to
AppConfig.sections(); the loader never changes.

Env isolates process-environment reads behind a one-method interface so
section tests can substitute a fixed map instead of mutating the real
environment.

Notes
-----
  • LoadFromValue is deliberately forgiving: an absent key keeps the
    defaulted field, and a present key of the wrong type is silently
    ignored.  The single exception is logging.cleanup_interval, whose
    custom parser fails the load (see interval.go).
  • Validate must be a pure function of current field values and safe to
    call repeatedly.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Env is the narrow environment-lookup capability used for the dedicated
// override variables (DATABASE_URL, JWT_SECRET, and friends).
type Env interface {
	Lookup(key string) (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnv is a fixed in-memory environment for tests.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Section is the contract every configuration group implements.
type Section interface {
	// Name returns the group's key in the configuration tree ("server",
	// "database", ...).
	Name() string

	// LoadFromValue extracts fields from the group's subtree of the merged
	// configuration.  value is nil when the group is absent.
	LoadFromValue(value any) error

	// Validate reports the first violated constraint, or nil.
	Validate() error

	// RequiredEnvVars lists variables that must resolve a value somewhere
	// in the precedence chain.
	RequiredEnvVars() []string

	// ApplyEnvOverrides applies the dedicated override variables, which
	// win over every other source.  Called before Validate.
	ApplyEnvOverrides(env Env) error
}

/*──────────────────────── lenient extraction helpers ───────────────────────*/

// subtree asserts the group's value is a string-keyed map.  nil means the
// group is absent, which is fine; any other shape is a type mismatch and
// fails the load.
func subtree(name string, value any) (map[string]any, error) {
	if value == nil {
		return nil, nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("section %s must be a table, got %T", name, value)
	}
	return m, nil
}

// strVal returns m[key] when it is a string.
func strVal(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}

// boolVal returns m[key] coerced to bool.  String values are parsed so the
// prefixed-environment layer, which only carries strings, works too.
func boolVal(m map[string]any, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	switch v := m[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// intVal returns m[key] coerced to int.  Accepts the integer types the YAML
// parser produces, integral floats, and numeric strings from the env layer.
func intVal(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// strSliceVal returns m[key] when it is a list of strings.
func strSliceVal(m map[string]any, key string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	switch v := m[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
