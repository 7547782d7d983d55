// internal/config/database.go
//
// Database section: connection URL and pool sizing.
//
// The URL almost never comes from the file layer; in practice it resolves
// from the dedicated DATABASE_URL variable, which outranks everything else
// in the precedence chain.
package config

import "fmt"

// DatabaseConfig holds connection and pool settings.
type DatabaseConfig struct {
	URL            string
	MaxConnections int
	PoolTimeout    int // seconds
}

func defaultDatabase() DatabaseConfig {
	return DatabaseConfig{
		MaxConnections: 10,
		PoolTimeout:    30,
	}
}

func (c *DatabaseConfig) Name() string { return "database" }

func (c *DatabaseConfig) LoadFromValue(value any) error {
	m, err := subtree(c.Name(), value)
	if err != nil {
		return err
	}
	if v, ok := strVal(m, "url"); ok {
		c.URL = v
	}
	if v, ok := intVal(m, "max_connections"); ok {
		c.MaxConnections = v
	}
	if v, ok := intVal(m, "pool_timeout"); ok {
		c.PoolTimeout = v
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("database url is required but was not provided")
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max_connections must be greater than zero, got %d", c.MaxConnections)
	}
	if c.PoolTimeout <= 0 {
		return fmt.Errorf("pool_timeout must be greater than zero, got %d", c.PoolTimeout)
	}
	return nil
}

func (c *DatabaseConfig) RequiredEnvVars() []string { return []string{"DATABASE_URL"} }

func (c *DatabaseConfig) ApplyEnvOverrides(env Env) error {
	if v, ok := env.Lookup("DATABASE_URL"); ok && v != "" {
		c.URL = v
	}
	return nil
}
