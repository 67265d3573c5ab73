package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults are valid", func(c *Config) {}, false},
		{"Zero arena width", func(c *Config) { c.ArenaWidth = 0 }, true},
		{"Negative arena height", func(c *Config) { c.ArenaHeight = -10 }, true},
		{"Zero ball count", func(c *Config) { c.BallCount = 0 }, true},
		{"Negative radius", func(c *Config) { c.BallRadius = -1 }, true},
		{"Zero density target", func(c *Config) { c.TargetBallsPerCell = 0 }, true},
		{"Negative start speed", func(c *Config) { c.MaxStartSpeed = -1 }, true},
		{"Zero tick rate", func(c *Config) { c.TicksPerSecond = 0 }, true},
		{"Zero start speed is fine", func(c *Config) { c.MaxStartSpeed = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "arenaWidth": { "type": "number", "exclusiveMinimum": 0 },
    "arenaHeight": { "type": "number", "exclusiveMinimum": 0 },
    "ballCount": { "type": "integer", "minimum": 1 },
    "ballRadius": { "type": "number", "exclusiveMinimum": 0 },
    "targetBallsPerCell": { "type": "integer", "minimum": 1 }
  },
  "required": ["arenaWidth", "arenaHeight", "ballCount", "ballRadius", "targetBallsPerCell"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	t.Run("Valid", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "valid.json", `{
			"arenaWidth": 800,
			"arenaHeight": 600,
			"ballCount": 10,
			"ballRadius": 7.5,
			"targetBallsPerCell": 4
		}`)

		cfg, err := LoadConfig(cfgPath, schemaPath)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.ArenaWidth != 800 || cfg.ArenaHeight != 600 {
			t.Errorf("arena = %gx%g; want 800x600", cfg.ArenaWidth, cfg.ArenaHeight)
		}
		if cfg.BallCount != 10 || cfg.BallRadius != 7.5 {
			t.Errorf("balls = %d r=%g; want 10 r=7.5", cfg.BallCount, cfg.BallRadius)
		}
	})

	t.Run("SchemaViolation", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "bad.json", `{
			"arenaWidth": 800,
			"arenaHeight": 600,
			"ballCount": 0,
			"ballRadius": 7.5,
			"targetBallsPerCell": 4
		}`)

		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted a config violating the schema")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		cfgPath := writeFile(t, dir, "broken.json", `{not json`)
		if _, err := LoadConfig(cfgPath, schemaPath); err == nil {
			t.Error("LoadConfig accepted malformed JSON")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaPath); err == nil {
			t.Error("LoadConfig accepted a missing file")
		}
	})
}
