// Package config loads the tilekit TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tilekit/layout"
	"github.com/lixenwraith/tilekit/screen"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/widgets"
)

// Config is the file-backed configuration; CLI flags override it
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`
}

type LayoutConfig struct {
	// CacheSize is the capacity of the default split cache
	CacheSize int `toml:"cache_size"`
}

type RenderConfig struct {
	ColorMode string `toml:"color_mode"` // auto, truecolor or 256
	Border    string `toml:"border"`     // plain, rounded, double, thick or blank
}

// ThemeConfig holds colors in any form style.ParseColor accepts; empty keeps the terminal default
type ThemeConfig struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
	Text   string `toml:"text"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{CacheSize: layout.DefaultCacheSize},
		Render: RenderConfig{ColorMode: "auto", Border: "plain"},
		Log:    LogConfig{Dir: "logs"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return c.writeTo(f)
}

// writeTo encodes into wc and closes it, reporting the first failure
func (c *Config) writeTo(wc io.WriteCloser) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close config: %w", cerr)
		}
	}()
	return c.Encode(wc)
}

// Encode writes the configuration as TOML to w
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	if c.Layout.CacheSize < 1 {
		return fmt.Errorf("layout.cache_size must be positive, got %d", c.Layout.CacheSize)
	}
	if _, err := c.ColorMode(); err != nil {
		return fmt.Errorf("render.color_mode: %w", err)
	}
	if _, ok := widgets.ParseBorderType(c.Render.Border); !ok {
		return fmt.Errorf("render.border: unknown border type %q", c.Render.Border)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// ColorMode resolves render.color_mode, detecting from the environment for auto
func (c *Config) ColorMode() (screen.ColorMode, error) {
	return screen.ParseColorMode(c.Render.ColorMode)
}

// BorderType resolves render.border, falling back to plain
func (c *Config) BorderType() widgets.BorderType {
	t, _ := widgets.ParseBorderType(c.Render.Border)
	return t
}

// Theme is a resolved ThemeConfig
type Theme struct {
	Border style.Style
	Title  style.Style
	Text   style.Style
}

// Resolve parses the theme colors into foreground styles
func (t ThemeConfig) Resolve() (Theme, error) {
	var th Theme
	for _, f := range []struct {
		key string
		src string
		dst *style.Style
	}{
		{"theme.border", t.Border, &th.Border},
		{"theme.title", t.Title, &th.Title},
		{"theme.text", t.Text, &th.Text},
	} {
		if f.src == "" {
			continue
		}
		c, err := style.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = style.New().Fg(c)
	}
	return th, nil
}
