package seeder

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WordNetPath != "./data/wordnet" {
		t.Errorf("expected default wordnet path, got %q", cfg.WordNetPath)
	}
	if cfg.BatchSize != 500 {
		t.Errorf("expected default batch size 500, got %d", cfg.BatchSize)
	}
	if cfg.DryRun {
		t.Error("expected dry run off by default")
	}
}

func TestLoadConfig_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeder.yaml")
	if err := os.WriteFile(path, []byte("wordnet_path: /data/oewn\nbatch_size: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SEEDER_BATCH_SIZE", "75")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WordNetPath != "/data/oewn" {
		t.Errorf("expected wordnet path from yaml, got %q", cfg.WordNetPath)
	}
	if cfg.BatchSize != 75 {
		t.Errorf("expected env to override batch size, got %d", cfg.BatchSize)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_BatchSizeBounds(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"zero", "0", true},
		{"negative", "-5", true},
		{"one", "1", false},
		{"at max", strconv.Itoa(MaxBatchSize), false},
		{"above max", strconv.Itoa(MaxBatchSize + 1), true},
		{"far above max", "10000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEEDER_BATCH_SIZE", tt.value)

			cfg, err := LoadConfig("")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for batch size %s, got %+v", tt.value, cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strconv.Itoa(cfg.BatchSize); got != tt.value {
				t.Errorf("batch size = %s, want %s", got, tt.value)
			}
		})
	}
}

func TestMaxBatchSize_FitsSenseParameters(t *testing.T) {
	// Five columns per sense row, with headroom for words carrying several senses.
	const paramsPerSense, sensesPerWord, pgMaxParams = 5, 6, 65535
	if MaxBatchSize*paramsPerSense*sensesPerWord > pgMaxParams {
		t.Fatalf("MaxBatchSize %d allows more than %d bind parameters", MaxBatchSize, pgMaxParams)
	}
}
