package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the validation defaults a guard falls back to when a caller
// leaves the corresponding option unset.
type Config struct {
	// Strict rejects undeclared columns by default.
	Strict bool `env:"FRAMECHECK_STRICT" envDefault:"false"`
	// Lazy collects all violations before reporting instead of stopping at
	// the first.
	Lazy bool `env:"FRAMECHECK_LAZY" envDefault:"false"`
	// ChecksMaxSamples caps example values per failed check.
	ChecksMaxSamples int `env:"FRAMECHECK_CHECKS_MAX_SAMPLES" envDefault:"5"`
	// RowMaxErrors caps detailed row failures in a row validation report.
	RowMaxErrors int `env:"FRAMECHECK_ROW_MAX_ERRORS" envDefault:"5"`
}

var (
	mu     sync.Mutex
	cached *Config

	envLoaded sync.Once
)

// Default returns the compiled-in defaults without touching the environment.
func Default() Config {
	return Config{ChecksMaxSamples: 5, RowMaxErrors: 5}
}

// Load parses the environment into a Config, caching the result for the
// lifetime of the process. A `.env` file in the working directory is loaded
// once before the first parse; its absence is not an error.
func Load() (Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if cached != nil {
		return *cached, nil
	}
	envLoaded.Do(func() {
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), errors.Join(ErrParsingConfig, err)
	}
	if err := validateConfig(cfg); err != nil {
		return Default(), err
	}
	cached = &cfg
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Misconfiguration should
// prevent startup rather than surface per validation call.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load framecheck configuration: %v", err))
	}
	return cfg
}

// Reset clears the cache so the next Load re-reads the environment.
// Primarily for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
}

func validateConfig(cfg Config) error {
	if cfg.ChecksMaxSamples < 1 {
		return fmt.Errorf("%w: FRAMECHECK_CHECKS_MAX_SAMPLES must be >= 1, got %d",
			ErrInvalidConfig, cfg.ChecksMaxSamples)
	}
	if cfg.RowMaxErrors < 1 {
		return fmt.Errorf("%w: FRAMECHECK_ROW_MAX_ERRORS must be >= 1, got %d",
			ErrInvalidConfig, cfg.RowMaxErrors)
	}
	return nil
}
