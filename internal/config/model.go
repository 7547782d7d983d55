// internal/config/model.go
//
// Aggregate configuration model.
//
// Context
// -------
// AppConfig groups every Section.  The zero value is never used: Default()
// fills all fields before the loader applies any source, so no field is
// ever uninitialised.  Once Load returns, the aggregate is shared by
// reference and never mutated again.
//
// Sections are iterated in a fixed, stable order for both override
// application and validation; tests depend on that order when asserting
// which section failed first.
package config

// AppConfig is the immutable aggregate returned by Load.
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Secrets  SecretsConfig
	Cors     CorsConfig
	Cache    CacheConfig
}

// Default returns an aggregate with every field at its compiled-in default.
func Default() *AppConfig {
	return &AppConfig{
		Server:   defaultServer(),
		Database: defaultDatabase(),
		Logging:  defaultLogging(),
		Secrets:  defaultSecrets(),
		Cors:     defaultCors(),
		Cache:    defaultCache(),
	}
}

// sections returns the fixed iteration order.  New groups are appended
// here; the loader itself never changes.
func (c *AppConfig) sections() []Section {
	return []Section{
		&c.Server,
		&c.Database,
		&c.Logging,
		&c.Secrets,
		&c.Cors,
		&c.Cache,
	}
}

// ServerAddr returns the host:port listen address.
func (c *AppConfig) ServerAddr() string {
	return c.Server.Addr()
}
