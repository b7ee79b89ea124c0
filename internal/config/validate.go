package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Lexicon.Source {
	case LexiconSourceWordNet:
		if strings.TrimSpace(c.Lexicon.WordNetPath) == "" {
			return fmt.Errorf("lexicon.wordnet_path is required for source %q", LexiconSourceWordNet)
		}
	case LexiconSourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for lexicon source %q", LexiconSourcePostgres)
		}
	default:
		return fmt.Errorf("lexicon.source must be %q or %q (got %q)",
			LexiconSourceWordNet, LexiconSourcePostgres, c.Lexicon.Source)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.WordPerMinute <= 0 {
			return fmt.Errorf("rate_limit.word_per_minute must be > 0 (got %d)", c.RateLimit.WordPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", g.MaxAttempts)
	}
	if g.MinLength < 1 {
		return fmt.Errorf("min_length must be >= 1 (got %d)", g.MinLength)
	}
	if g.DefaultLength < g.MinLength {
		return fmt.Errorf("default_length must be >= min_length %d (got %d)", g.MinLength, g.DefaultLength)
	}
	return nil
}
