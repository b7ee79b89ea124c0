package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Generator GeneratorConfig `yaml:"generator"`
	Profanity ProfanityConfig `yaml:"profanity"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Docs      DocsConfig      `yaml:"docs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is only required when the lexicon is loaded from Postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Lexicon sources.
const (
	LexiconSourceWordNet  = "wordnet"
	LexiconSourcePostgres = "postgres"
)

// LexiconConfig selects where the vocabulary is loaded from.
type LexiconConfig struct {
	Source      string `yaml:"source"       env:"LEXICON_SOURCE"       env-default:"wordnet"`
	WordNetPath string `yaml:"wordnet_path" env:"LEXICON_WORDNET_PATH" env-default:"./data/wordnet"`
}

// GeneratorConfig holds word generation parameters.
type GeneratorConfig struct {
	MaxAttempts   int `yaml:"max_attempts"   env:"GENERATOR_MAX_ATTEMPTS"   env-default:"1000"`
	DefaultLength int `yaml:"default_length" env:"GENERATOR_DEFAULT_LENGTH" env-default:"5"`
	MinLength     int `yaml:"min_length"     env:"GENERATOR_MIN_LENGTH"     env-default:"3"`
}

// ProfanityConfig extends the built-in profanity dictionary.
type ProfanityConfig struct {
	ExtraWordsRaw string `yaml:"extra_words" env:"PROFANITY_EXTRA_WORDS"`
}

// ExtraWords returns the comma-separated extra words as a slice.
func (p ProfanityConfig) ExtraWords() []string {
	return splitList(p.ExtraWordsRaw)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for the word endpoint.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	WordPerMinute   int           `yaml:"word_per_minute"  env:"RATE_LIMIT_WORD_PER_MINUTE"  env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// DocsConfig holds API documentation settings.
type DocsConfig struct {
	Enabled   bool   `yaml:"enabled"    env:"DOCS_ENABLED"    env-default:"true"`
	PublicURL string `yaml:"public_url" env:"DOCS_PUBLIC_URL"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
