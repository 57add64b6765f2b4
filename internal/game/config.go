package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/blastgrid/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed     = "BLASTGRID_SEED"
	EnvTickMs   = "BLASTGRID_TICK_MS"
	EnvWidth    = "BLASTGRID_WIDTH"
	EnvHeight   = "BLASTGRID_HEIGHT"
	EnvLogFile  = "BLASTGRID_LOG_FILE"
	defaultTick = 50 * time.Millisecond
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible arenas and loot.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickInterval is the fixed step of the game clock.
	TickInterval time.Duration

	// Arena dimensions in cells.
	Width, Height int

	// LogFile receives structured game logs. Empty disables logging.
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		TickInterval: defaultTick,
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
	}
}

// ConfigFromEnv builds a Config from BLASTGRID_* environment variables,
// starting from DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		cfg.Seed = ParseSeed(v)
	}

	if v := os.Getenv(EnvTickMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got %q", EnvTickMs, v)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	for _, dim := range []struct {
		env string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
	} {
		v := os.Getenv(dim.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got %q", dim.env, v)
		}
		*dim.dst = n
	}

	cfg.LogFile = os.Getenv(EnvLogFile)
	return cfg, nil
}

// ParseSeed turns a seed string into a seed. Integers are used as-is; any
// other text is hashed so a memorable phrase can name an arena.
func ParseSeed(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(s))
}
