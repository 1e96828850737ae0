package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daptify14/tilenav/internal/keymap"
)

// ColumnsAuto asks the navigator to estimate columns from the tile layout.
const ColumnsAuto = "auto"

const (
	defaultTileWidth = 22
	minTileWidth     = 8
	defaultMaxDepth  = 1
	defaultMaxItems  = 2000
)

type Config struct {
	Keymap     string            `yaml:"keymap"`  // preset name, see keymap.PresetNames
	Keys       map[string]string `yaml:"keys"`    // key name -> command overrides
	Columns    string            `yaml:"columns"` // "auto" (default) or a positive integer
	TileWidth  int               `yaml:"tile_width"`
	Icons      string            `yaml:"icons"` // "nerdfont" (default), "unicode", "none"
	ShowHidden bool              `yaml:"show_hidden"`
	MaxDepth   int               `yaml:"max_depth"`
	MaxItems   int               `yaml:"max_items"`
}

func Default() Config {
	return Config{
		Keymap:    keymap.PresetAll,
		Columns:   ColumnsAuto,
		TileWidth: defaultTileWidth,
		Icons:     "nerdfont",
		MaxDepth:  defaultMaxDepth,
		MaxItems:  defaultMaxItems,
	}
}

func (c *Config) Normalize() {
	c.Keymap = strings.TrimSpace(strings.ToLower(c.Keymap))
	if c.Keymap == "" {
		c.Keymap = keymap.PresetAll
	}

	c.Columns = strings.TrimSpace(strings.ToLower(c.Columns))
	if c.Columns == "" {
		c.Columns = ColumnsAuto
	}

	c.Icons = strings.TrimSpace(strings.ToLower(c.Icons))

	if c.TileWidth == 0 {
		c.TileWidth = defaultTileWidth
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = defaultMaxDepth
	}
	if c.MaxItems == 0 {
		c.MaxItems = defaultMaxItems
	}
}

func (c Config) Validate() error {
	if _, err := keymap.Preset(c.Keymap); err != nil {
		return fmt.Errorf("keymap: %w", err)
	}
	if _, err := keymap.ParseOverrides(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	if _, err := c.FixedColumns(); err != nil {
		return err
	}
	if c.TileWidth < minTileWidth {
		return fmt.Errorf("invalid tile_width %d (minimum %d)", c.TileWidth, minTileWidth)
	}
	if c.Icons != "" {
		switch c.Icons {
		case "nerdfont", "unicode", "none":
		default:
			return fmt.Errorf("invalid icons %q (valid: nerdfont, unicode, none)", c.Icons)
		}
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d", c.MaxDepth)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("invalid max_items %d", c.MaxItems)
	}
	return nil
}

// FixedColumns returns the configured column count, or 0 for auto.
func (c Config) FixedColumns() (int, error) {
	if c.Columns == "" || c.Columns == ColumnsAuto {
		return 0, nil
	}
	n, err := strconv.Atoi(c.Columns)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid columns %q (valid: auto or a positive integer)", c.Columns)
	}
	return n, nil
}

// KeyMap resolves the preset and applies the per-key overrides.
func (c Config) KeyMap() (keymap.Map, error) {
	base, err := keymap.Preset(c.Keymap)
	if err != nil {
		return nil, err
	}
	overrides, err := c.KeyOverrides()
	if err != nil {
		return nil, err
	}
	return keymap.Merge(base, overrides), nil
}

// KeyOverrides returns the per-key overrides on their own, so a preset
// chosen later can be merged with them again.
func (c Config) KeyOverrides() (keymap.Map, error) {
	return keymap.ParseOverrides(c.Keys)
}

func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tilenav", "config.yaml")
}

func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom returns Default() if path doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
