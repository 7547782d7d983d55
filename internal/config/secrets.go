// internal/config/secrets.go
//
// Secrets section: signing key and optional cache credentials.
//
// These values may appear in the file layer for local development, but
// deployments are expected to supply them through the dedicated env vars,
// which always win.
package config

import "fmt"

const minJWTSecretLen = 32

// SecretsConfig holds values that must never be logged.
type SecretsConfig struct {
	JWTSecret string
	RedisURL  string // optional; empty means unset
}

func defaultSecrets() SecretsConfig { return SecretsConfig{} }

func (c *SecretsConfig) Name() string { return "secrets" }

func (c *SecretsConfig) LoadFromValue(value any) error {
	m, err := subtree(c.Name(), value)
	if err != nil {
		return err
	}
	if v, ok := strVal(m, "jwt_secret"); ok {
		c.JWTSecret = v
	}
	if v, ok := strVal(m, "redis_url"); ok {
		c.RedisURL = v
	}
	return nil
}

func (c *SecretsConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required but was not provided")
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("jwt_secret must be at least %d characters", minJWTSecretLen)
	}
	return nil
}

func (c *SecretsConfig) RequiredEnvVars() []string { return []string{"JWT_SECRET"} }

func (c *SecretsConfig) ApplyEnvOverrides(env Env) error {
	if v, ok := env.Lookup("JWT_SECRET"); ok && v != "" {
		c.JWTSecret = v
	}
	if v, ok := env.Lookup("REDIS_URL"); ok && v != "" {
		c.RedisURL = v
	}
	return nil
}
