// Package config holds the settings of the heitn command and server.
//
// Settings are read from a YAML file and environment variables, in this
// order of priority: environment, YAML, defaults.
package config

import (
	"time"

	"github.com/npillmayer/itn/normalize"
	"github.com/npillmayer/schuko/tracing"
)

// Config is the root configuration.
type Config struct {
	Grammar GrammarConfig `yaml:"grammar"`
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Log     LogConfig     `yaml:"log"`
}

// GrammarConfig holds grammar build settings.
type GrammarConfig struct {
	CacheDir       string `yaml:"cache_dir"       env:"HEITN_CACHE_DIR"`
	OverwriteCache bool   `yaml:"overwrite_cache" env:"HEITN_OVERWRITE_CACHE" env-default:"false"`
	Whitelist      string `yaml:"whitelist"       env:"HEITN_WHITELIST"`
	Locale         string `yaml:"locale"          env:"HEITN_LOCALE"`
	Concurrency    int    `yaml:"concurrency"     env:"HEITN_CONCURRENCY"     env-default:"0"`
}

// Options returns the normalizer options.
func (g GrammarConfig) Options() normalize.Options {
	return normalize.Options{
		CacheDir:       g.CacheDir,
		OverwriteCache: g.OverwriteCache,
		WhitelistPath:  g.Whitelist,
		Concurrency:    g.Concurrency,
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"HEITN_SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"HEITN_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HEITN_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HEITN_SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HEITN_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"HEITN_SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"HEITN_CORS_ALLOWED_ORIGINS" env-default:"*"`
	MaxAge         int      `yaml:"max_age"         env:"HEITN_CORS_MAX_AGE"         env-default:"3600"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"HEITN_LOG_LEVEL" env-default:"info"`
}

// TraceLevel returns the trace level for the configured log level.
func (l LogConfig) TraceLevel() tracing.TraceLevel {
	switch l.Level {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}
