// Package config loads the optional sqlbridge.toml tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"sqlbridge/internal/core"
)

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "sqlbridge.toml"

// Config controls generation behavior. Every field has a sensible default;
// a missing config file is not an error.
type Config struct {
	// OutputDir is where dialect artifacts and docs are written.
	OutputDir string `toml:"output_dir"`
	// BaseName overrides the artifact base name derived from the source file.
	BaseName string `toml:"base_name"`
	// Dialects restricts generation to a subset. Empty means all.
	Dialects []string `toml:"dialects"`
	// Strict makes the parser fail on clauses it cannot understand.
	Strict bool `toml:"strict"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{OutputDir: "./output"}
}

// Load reads the TOML config at path. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %q: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	for _, d := range cfg.Dialects {
		if !core.IsValidDialect(d) {
			return cfg, fmt.Errorf("config: unknown dialect %q", d)
		}
	}
	return cfg, nil
}
