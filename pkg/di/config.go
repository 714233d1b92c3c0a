package di

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config wires the container's external dependencies.
type Config struct {
	// Driver is the database/sql driver name: "postgres" or "sqlite3".
	Driver string
	// DSN is the connection string for Driver.
	DSN string

	// RedisAddr selects the shared Redis cache when set; empty selects the
	// in-process memory store.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SweepInterval tunes the memory store's expiry sweeper.
	SweepInterval time.Duration
}

// DefaultConfig returns a single-process development setup on SQLite with the
// in-process cache.
func DefaultConfig() Config {
	return Config{
		Driver:        "sqlite3",
		DSN:           "file:hospital.db?_fk=1",
		SweepInterval: time.Minute,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In("postgres", "sqlite3")),
		validation.Field(&c.DSN, validation.Required),
		validation.Field(&c.RedisDB, validation.Min(0)),
	)
}

// LoadConfig reads configuration from HOSPITAL_* environment variables,
// falling back to DefaultConfig for anything unset:
//
//	HOSPITAL_DB_DRIVER, HOSPITAL_DB_DSN,
//	HOSPITAL_REDIS_ADDR, HOSPITAL_REDIS_PASSWORD, HOSPITAL_REDIS_DB
func LoadConfig() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("HOSPITAL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "HOSPITAL_"))
	}), nil); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if v := k.String("db_driver"); v != "" {
		cfg.Driver = v
	}
	if v := k.String("db_dsn"); v != "" {
		cfg.DSN = v
	}
	if v := k.String("redis_addr"); v != "" {
		cfg.RedisAddr = v
	}
	if v := k.String("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if k.Exists("redis_db") {
		cfg.RedisDB = k.Int("redis_db")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
