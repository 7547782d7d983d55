// internal/config/server.go
//
// HTTP server section: bind address, port, and request timeout.
package config

import (
	"fmt"
	"net"
	"strconv"
)

// ServerConfig holds web-server tunables.
type ServerConfig struct {
	Host    string
	Port    int
	Timeout int // seconds
}

func defaultServer() ServerConfig {
	return ServerConfig{
		Host:    "127.0.0.1",
		Port:    3001,
		Timeout: 30,
	}
}

func (c *ServerConfig) Name() string { return "server" }

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) LoadFromValue(value any) error {
	m, err := subtree(c.Name(), value)
	if err != nil {
		return err
	}
	if v, ok := strVal(m, "host"); ok {
		c.Host = v
	}
	if v, ok := intVal(m, "port"); ok {
		c.Port = v
	}
	if v, ok := intVal(m, "timeout"); ok {
		c.Timeout = v
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range 1-65535", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than zero, got %d", c.Timeout)
	}
	return nil
}

func (c *ServerConfig) RequiredEnvVars() []string { return nil }

func (c *ServerConfig) ApplyEnvOverrides(Env) error { return nil }
