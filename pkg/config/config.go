// ABOUTME: Configuration management for the library and the development server
// ABOUTME: Loads defaults, an optional config file and RSSIT_* environment variables through viper

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RSSIT_CACHE_TYPE
const EnvPrefix = "RSSIT"

// ConfigFileEnv names the environment variable holding an optional config file path
const ConfigFileEnv = "RSSIT_CONFIG"

// Cache backends accepted in CacheConfig.Type
const (
	CacheTypeNone   = "none"
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
	CacheTypeSQLite = "sqlite"
)

// Config holds all configuration
type Config struct {
	Parser ParserConfig `mapstructure:"parser"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// ParserConfig controls feed fetching and parsing
type ParserConfig struct {
	// Concurrency is the maximum number of feeds fetched at once
	Concurrency int `mapstructure:"concurrency"`

	// ParseTimeout bounds a whole batch parse
	ParseTimeout time.Duration `mapstructure:"parse_timeout"`

	// ValidationTimeout bounds a single validation
	ValidationTimeout time.Duration `mapstructure:"validation_timeout"`

	// MaxBodyBytes caps the size of a downloaded feed document
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	UserAgent  string        `mapstructure:"user_agent"`
	MaxRetries int           `mapstructure:"max_retries"`

	// RateLimit is the sustained outbound request rate per second; 0 disables limiting
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string `mapstructure:"type"`

	// TTL is how long a parsed feed stays cached
	TTL time.Duration `mapstructure:"ttl"`

	Redis  RedisConfig  `mapstructure:"redis"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is text or json
	Format string `mapstructure:"format"`

	// File, when set, receives logs through a rotating writer instead of stderr
	File string `mapstructure:"file"`
}

// ServerConfig holds the development HTTP server configuration
type ServerConfig struct {
	Port       string        `mapstructure:"port"`
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("parser.concurrency", 8)
	v.SetDefault("parser.parse_timeout", 30*time.Second)
	v.SetDefault("parser.validation_timeout", 15*time.Second)
	v.SetDefault("parser.max_body_bytes", int64(10<<20))

	v.SetDefault("http.timeout", 20*time.Second)
	v.SetDefault("http.user_agent", "RSSIt/1.0")
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.rate_limit", 0.0)
	v.SetDefault("http.rate_burst", 4)

	v.SetDefault("cache.type", CacheTypeMemory)
	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.sqlite.path", "rssit-cache.db")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.rate_window", time.Minute)
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	// Defaults always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// LoadFromEnv loads configuration from defaults, the file named by RSSIT_CONFIG
// (if any) and RSSIT_* environment variables, in increasing precedence.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(ConfigFileEnv))
}

// Load loads configuration from defaults, the given file (optional) and the environment
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Parser.Concurrency < 1 {
		return errors.New("parser concurrency must be at least 1")
	}

	if c.Parser.ParseTimeout <= 0 || c.Parser.ValidationTimeout <= 0 {
		return errors.New("parser timeouts must be positive")
	}

	if c.Parser.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	if c.HTTP.MaxRetries < 1 {
		return errors.New("http max retries must be at least 1")
	}

	if c.HTTP.RateLimit < 0 {
		return errors.New("http rate limit cannot be negative")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	switch c.Cache.Type {
	case CacheTypeNone, CacheTypeMemory:
	case CacheTypeRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheTypeSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'none', 'memory', 'redis' or 'sqlite'")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	return nil
}
