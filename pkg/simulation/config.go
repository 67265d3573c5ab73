package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	// Arena Dimensions (fixed for the process lifetime)
	ArenaWidth  float64 `json:"arenaWidth"`
	ArenaHeight float64 `json:"arenaHeight"`

	// Population
	BallCount  int     `json:"ballCount"`
	BallRadius float64 `json:"ballRadius"`

	// Grid density: how many balls one cell is expected to hold.
	// The actual cell ends up somewhat larger so it tiles the arena exactly.
	TargetBallsPerCell int `json:"targetBallsPerCell"`

	// Physics
	MaxStartSpeed float64 `json:"maxStartSpeed"` // per-axis start velocity range is [-max, +max]

	// Pacing / determinism
	TicksPerSecond int    `json:"ticksPerSecond"`
	Seed           uint64 `json:"seed"` // 0 means seed from the clock
}

func DefaultConfig() *Config {
	return &Config{
		ArenaWidth:         1200,
		ArenaHeight:        1200,
		BallCount:          50,
		BallRadius:         10,
		TargetBallsPerCell: 4,
		MaxStartSpeed:      5,
		TicksPerSecond:     24,
		Seed:               0,
	}
}

// Validate reports the first configuration error, wrapped around
// ErrInvalidConfig. It must pass before any simulation state is created.
func (c *Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("%w: arena must be positive, got %gx%g", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	}
	if c.BallCount <= 0 {
		return fmt.Errorf("%w: ball count must be positive, got %d", ErrInvalidConfig, c.BallCount)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidConfig, c.BallRadius)
	}
	if c.TargetBallsPerCell <= 0 {
		return fmt.Errorf("%w: target balls per cell must be positive, got %d", ErrInvalidConfig, c.TargetBallsPerCell)
	}
	if c.MaxStartSpeed < 0 {
		return fmt.Errorf("%w: max start speed cannot be negative, got %g", ErrInvalidConfig, c.MaxStartSpeed)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks per second must be positive, got %d", ErrInvalidConfig, c.TicksPerSecond)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	// The schema check already ran on the decoded value, so a plain
	// re-read of the bytes is enough here.
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
