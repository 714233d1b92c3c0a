package cacheinfra

import "time"

// Config selects and tunes the cache store backend.
type Config struct {
	// Addr is the Redis endpoint (host:port). Empty selects the in-process
	// memory store instead.
	Addr string

	// Password authenticates against Redis. Ignored by the memory store.
	Password string

	// DB is the Redis logical database number.
	DB int

	// SweepInterval is how often the memory store drops expired entries in
	// the background. Zero disables the sweeper; expired entries are then
	// dropped lazily on read.
	SweepInterval time.Duration
}

// DefaultConfig returns settings suitable for a single-process deployment.
func DefaultConfig() Config {
	return Config{
		SweepInterval: time.Minute,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.DB < 0 {
		return &ConfigError{Field: "DB", Message: "must be non-negative"}
	}
	if c.SweepInterval < 0 {
		return &ConfigError{Field: "SweepInterval", Message: "must be non-negative"}
	}
	if c.Addr == "" && (c.Password != "" || c.DB != 0) {
		return &ConfigError{Field: "Addr", Message: "required when Redis credentials are set"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
