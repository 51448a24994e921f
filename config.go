package partsrun

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// RunConfig holds window and diagnostics settings for Run.
type RunConfig struct {
	Title         string  `toml:"title"`
	Scale         float64 `toml:"scale"` // window size multiplier over the logical screen
	TPS           int     `toml:"tps"`
	ShowFPS       bool    `toml:"show_fps"`
	Debug         bool    `toml:"debug"`
	ScreenshotDir string  `toml:"screenshot_dir"`
}

// DefaultRunConfig returns the settings used when no config file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Parts Run",
		Scale:         1,
		TPS:           60,
		ScreenshotDir: "screenshots",
	}
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("partsrun: scale must be positive, got %v", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("partsrun: tps must be positive, got %d", c.TPS)
	}
	return nil
}

// LoadConfig decodes a TOML file over DefaultRunConfig. A missing file yields
// the defaults. Unknown keys are an error.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRunConfig(), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
