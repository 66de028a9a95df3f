package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Random source names accepted by RandomSource
const (
	RandomMath   = "math"
	RandomCrypto = "crypto"
)

// Log formats accepted by LogFormat
const (
	LogFormatDevelopment = "development"
	LogFormatProduction  = "production"
)

// Config is assembled from defaults, an optional TOML file, then the
// environment, each layer overriding the previous one.
type Config struct {
	Port      string `toml:"port"`       // PORT (default "8080")
	LogLevel  string `toml:"log_level"`  // QLAB_LOG_LEVEL (default "info")
	LogFormat string `toml:"log_format"` // QLAB_LOG_FORMAT (default "production")

	InitialQubits   int      `toml:"initial_qubits"`   // QLAB_INITIAL_QUBITS (default 2)
	MaxQubits       int      `toml:"max_qubits"`       // QLAB_MAX_QUBITS (default 8; 0 = unbounded)
	MaxSessions     int      `toml:"max_sessions"`     // QLAB_MAX_SESSIONS (default 1024)
	SessionTTL      Duration `toml:"session_ttl"`      // QLAB_SESSION_TTL (default 2h)
	CleanupInterval Duration `toml:"cleanup_interval"` // QLAB_CLEANUP_INTERVAL (default 5m; 0 = disabled)
	RandomSource    string   `toml:"random_source"`    // QLAB_RANDOM_SOURCE (default "math")
}

// Duration lets TOML files spell durations as strings such as "90m"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Port:            "8080",
		LogLevel:        "info",
		LogFormat:       LogFormatProduction,
		InitialQubits:   2,
		MaxQubits:       8,
		MaxSessions:     1024,
		SessionTTL:      Duration{2 * time.Hour},
		CleanupInterval: Duration{5 * time.Minute},
		RandomSource:    RandomMath,
	}
}

// Load builds the configuration. path may be empty, in which case
// QLAB_CONFIG is consulted; a missing file is an error only when a path was
// given explicitly.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("QLAB_CONFIG")
		explicit = path != ""
	}
	if explicit {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Wrapf(err, "config: read %s", path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = envOrDefault("PORT", c.Port)
	c.LogLevel = envOrDefault("QLAB_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("QLAB_LOG_FORMAT", c.LogFormat)
	c.RandomSource = envOrDefault("QLAB_RANDOM_SOURCE", c.RandomSource)

	ints := []struct {
		key string
		dst *int
	}{
		{"QLAB_INITIAL_QUBITS", &c.InitialQubits},
		{"QLAB_MAX_QUBITS", &c.MaxQubits},
		{"QLAB_MAX_SESSIONS", &c.MaxSessions},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, e.key)
		}
		*e.dst = n
	}

	durations := []struct {
		key string
		dst *Duration
	}{
		{"QLAB_SESSION_TTL", &c.SessionTTL},
		{"QLAB_CLEANUP_INTERVAL", &c.CleanupInterval},
	}
	for _, e := range durations {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, e.key)
		}
		e.dst.Duration = d
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	if c.InitialQubits < 1 {
		return errors.Errorf("config: initial_qubits must be at least 1, got %d", c.InitialQubits)
	}
	if c.MaxQubits < 0 {
		return errors.Errorf("config: max_qubits must not be negative, got %d", c.MaxQubits)
	}
	if c.MaxQubits > 0 && c.InitialQubits > c.MaxQubits {
		return errors.Errorf("config: initial_qubits (%d) exceeds max_qubits (%d)", c.InitialQubits, c.MaxQubits)
	}
	if c.MaxSessions < 1 {
		return errors.Errorf("config: max_sessions must be positive, got %d", c.MaxSessions)
	}
	if c.SessionTTL.Duration <= 0 {
		return errors.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.CleanupInterval.Duration < 0 {
		return errors.Errorf("config: cleanup_interval must not be negative, got %s", c.CleanupInterval)
	}
	switch c.RandomSource {
	case RandomMath, RandomCrypto:
	default:
		return errors.Errorf("config: random_source must be %q or %q, got %q", RandomMath, RandomCrypto, c.RandomSource)
	}
	switch c.LogFormat {
	case LogFormatDevelopment, LogFormatProduction:
	default:
		return errors.Errorf("config: log_format must be %q or %q, got %q", LogFormatDevelopment, LogFormatProduction, c.LogFormat)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
