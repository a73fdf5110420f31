package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const devJWTSecret = "dev-secret-change-in-production"

// ErrInsecureSecret is returned when production runs with the development JWT secret.
var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

// Config is the root configuration of the API process.
type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development test production"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

// DatabaseConfig selects the persistence backend. The memory driver keeps
// everything in process and is meant for tests and local runs.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=mysql memory"`
	DSN             string        `koanf:"dsn" validate:"required_if=Driver mysql"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	Migrate         bool          `koanf:"migrate"`
}

type AuthConfig struct {
	JWTSecret      string        `koanf:"jwt_secret" validate:"required"`
	JWTExpiry      time.Duration `koanf:"jwt_expiry" validate:"gt=0"`
	PasswordScheme string        `koanf:"password_scheme" validate:"oneof=plain argon2id"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// envKeys maps the flat environment variable names to koanf paths.
var envKeys = map[string]string{
	"env":                  "env",
	"port":                 "server.port",
	"read_timeout":         "server.read_timeout",
	"write_timeout":        "server.write_timeout",
	"idle_timeout":         "server.idle_timeout",
	"cors_allowed_origins": "server.cors_allowed_origins",
	"database_driver":      "database.driver",
	"database_dsn":         "database.dsn",
	"db_max_open_conns":    "database.max_open_conns",
	"db_max_idle_conns":    "database.max_idle_conns",
	"db_conn_max_lifetime": "database.conn_max_lifetime",
	"db_migrate":           "database.migrate",
	"jwt_secret":           "auth.jwt_secret",
	"jwt_expiry":           "auth.jwt_expiry",
	"password_scheme":      "auth.password_scheme",
	"log_level":            "log.level",
	"log_format":           "log.format",
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		Env: "development",
		Server: ServerConfig{
			Port:               "3001",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       10 * time.Second,
			IdleTimeout:        60 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			DSN:             "root:password@tcp(127.0.0.1:3306)/holocron?parseTime=true",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			Migrate:         true,
		},
		Auth: AuthConfig{
			JWTSecret:      devJWTSecret,
			JWTExpiry:      15 * time.Minute,
			PasswordScheme: "plain",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load layers environment variables over the defaults and validates the result.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", transformEnvKey), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	if err := splitList(k, "server.cors_allowed_origins"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and refuses the development secret in production.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Env == "production" && c.Auth.JWTSecret == devJWTSecret {
		return ErrInsecureSecret
	}

	return nil
}

// splitList turns a comma-separated environment value into a string slice.
func splitList(k *koanf.Koanf, path string) error {
	raw, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	if err := k.Set(path, items); err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	return nil
}

// transformEnvKey returns the koanf path for a known variable, or "" so the
// provider skips it.
func transformEnvKey(key string) string {
	return envKeys[strings.ToLower(key)]
}
