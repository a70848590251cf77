package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeontower/internal/dice"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"DUNGEONTOWER_SEED" envDefault:"0"`

	// LogFile receives structured logs. Empty discards them, since the
	// terminal belongs to the game while it runs.
	LogFile string `env:"DUNGEONTOWER_LOG_FILE"`

	// Telemetry enables trace export to Honeycomb.
	Telemetry        bool   `env:"DUNGEONTOWER_TELEMETRY" envDefault:"false"`
	HoneycombKey     string `env:"HONEYCOMB_DUNGEONBAND_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DUNGEONBAND_DATASET" envDefault:"dungeontower"`
}

// LoadConfig parses Config from environment variables and resolves a zero
// seed into a random one.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Seed == 0 {
		seed, err := dice.NewSeed()
		if err != nil {
			return Config{}, fmt.Errorf("failed to generate seed: %w", err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
