// internal/config/cors.go
//
// CORS section.  Consumed by internal/middleware when building the
// cross-origin layer; the section itself only carries and checks values.
package config

import "fmt"

// CorsConfig holds cross-origin resource sharing settings.
type CorsConfig struct {
	AllowOrigins     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int // seconds
}

func defaultCors() CorsConfig {
	return CorsConfig{
		AllowOrigins: []string{"*"},
		MaxAge:       3600,
	}
}

func (c *CorsConfig) Name() string { return "cors" }

func (c *CorsConfig) LoadFromValue(value any) error {
	m, err := subtree(c.Name(), value)
	if err != nil {
		return err
	}
	if v, ok := strSliceVal(m, "allow_origins"); ok {
		c.AllowOrigins = v
	}
	if v, ok := strSliceVal(m, "allow_headers"); ok {
		c.AllowHeaders = v
	}
	if v, ok := strSliceVal(m, "expose_headers"); ok {
		c.ExposeHeaders = v
	}
	if v, ok := boolVal(m, "allow_credentials"); ok {
		c.AllowCredentials = v
	}
	if v, ok := intVal(m, "max_age"); ok {
		c.MaxAge = v
	}
	return nil
}

func (c *CorsConfig) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("allow_origins must not be empty")
	}
	if c.AllowCredentials && c.wildcardOrigin() {
		return fmt.Errorf("allow_credentials cannot be combined with a wildcard origin")
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("max_age must not be negative, got %d", c.MaxAge)
	}
	return nil
}

func (c *CorsConfig) RequiredEnvVars() []string { return nil }

func (c *CorsConfig) ApplyEnvOverrides(Env) error { return nil }

func (c *CorsConfig) wildcardOrigin() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
