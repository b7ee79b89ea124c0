package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// MaxBatchSize bounds words per insert chunk. Each sense takes five bind
// parameters in one multi-row INSERT, and PostgreSQL accepts at most 65535
// per statement.
const MaxBatchSize = 2000

// Config holds seeder pipeline settings.
type Config struct {
	WordNetPath string `yaml:"wordnet_path" env:"SEEDER_WORDNET_PATH" env-default:"./data/wordnet"`
	BatchSize   int    `yaml:"batch_size"   env:"SEEDER_BATCH_SIZE"   env-default:"500"`
	DryRun      bool   `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if cfg.WordNetPath == "" {
		return nil, fmt.Errorf("seeder config: wordnet_path is required")
	}
	if cfg.BatchSize <= 0 || cfg.BatchSize > MaxBatchSize {
		return nil, fmt.Errorf("seeder config: batch_size must be between 1 and %d, got %d", MaxBatchSize, cfg.BatchSize)
	}

	return &cfg, nil
}
