// internal/config/errors.go
//
// Typed configuration errors.
//
// All loader failures surface as one of these so cmd/authd can report a
// startup problem without string matching.  None of them is retryable; an
// operator fixes the configuration and restarts the process.
package config

import "fmt"

// MissingVarError reports a mandatory value that never resolved anywhere in
// the precedence chain.
type MissingVarError struct {
	Var string
}

func (e *MissingVarError) Error() string {
	return "missing required environment variable: " + e.Var
}

// SectionError wraps a failure from one section with the section name, so
// the operator knows which group to fix.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return e.Section + ": " + e.Err.Error()
}

func (e *SectionError) Unwrap() error { return e.Err }

// ParseError reports a configuration file that exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
