// Package config holds the palette, density table and paths used to render
// launcher icons. A Config is built once and never mutated.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultResDir   = "android/app/src/main/res"
	DefaultStoreDir = "android_icons_store"
	DefaultLogoPath = "public/assets/logo.png"
	DefaultStore    = 512
)

type Palette struct {
	Primary color.RGBA
	Gold    color.RGBA
	Dark    color.RGBA
	Light   color.RGBA
}

// Density is one Android density bucket and its launcher icon edge in pixels.
type Density struct {
	Name string
	Size int
}

type Config struct {
	Palette   Palette
	Densities []Density
	StoreSize int
	ResDir    string
	StoreDir  string
	LogoPath  string
}

func Default() Config {
	return Config{
		Palette: Palette{
			Primary: color.RGBA{74, 144, 226, 255},
			Gold:    color.RGBA{212, 175, 55, 255},
			Dark:    color.RGBA{26, 26, 26, 255},
			Light:   color.RGBA{245, 245, 245, 255},
		},
		Densities: []Density{
			{"mdpi", 48},
			{"hdpi", 72},
			{"xhdpi", 96},
			{"xxhdpi", 144},
			{"xxxhdpi", 192},
		},
		StoreSize: DefaultStore,
		ResDir:    DefaultResDir,
		StoreDir:  DefaultStoreDir,
		LogoPath:  DefaultLogoPath,
	}
}

func (c Config) Validate() error {
	if len(c.Densities) == 0 {
		return errors.New("no densities configured")
	}
	seen := make(map[string]struct{}, len(c.Densities))
	for _, d := range c.Densities {
		if d.Name == "" {
			return errors.New("density with empty name")
		}
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("duplicate density %q", d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.Size <= 0 {
			return fmt.Errorf("density %q: size %d must be positive", d.Name, d.Size)
		}
	}
	if c.StoreSize <= 0 {
		return fmt.Errorf("store size %d must be positive", c.StoreSize)
	}
	if c.ResDir == "" || c.StoreDir == "" {
		return errors.New("output directories must not be empty")
	}
	return nil
}

type fileConfig struct {
	Palette struct {
		Primary string `toml:"primary"`
		Gold    string `toml:"gold"`
		Dark    string `toml:"dark"`
		Light   string `toml:"light"`
	} `toml:"palette"`
	Density []struct {
		Name string `toml:"name"`
		Size int    `toml:"size"`
	} `toml:"density"`
	StoreSize int    `toml:"store_size"`
	ResDir    string `toml:"res_dir"`
	StoreDir  string `toml:"store_dir"`
	Logo      string `toml:"logo"`
}

// Load reads a TOML file and overlays it on Default. Keys left out keep their
// default; a [[density]] list replaces the whole table.
func Load(path string) (Config, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, keys[0].String())
	}

	cfg := Default()
	for _, p := range []struct {
		key string
		in  string
		out *color.RGBA
	}{
		{"palette.primary", fc.Palette.Primary, &cfg.Palette.Primary},
		{"palette.gold", fc.Palette.Gold, &cfg.Palette.Gold},
		{"palette.dark", fc.Palette.Dark, &cfg.Palette.Dark},
		{"palette.light", fc.Palette.Light, &cfg.Palette.Light},
	} {
		if p.in == "" {
			continue
		}
		c, err := ParseColor(p.in)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %s: %w", path, p.key, err)
		}
		*p.out = c
	}

	if len(fc.Density) > 0 {
		cfg.Densities = cfg.Densities[:0:0]
		for _, d := range fc.Density {
			cfg.Densities = append(cfg.Densities, Density{Name: d.Name, Size: d.Size})
		}
	}
	if fc.StoreSize != 0 {
		cfg.StoreSize = fc.StoreSize
	}
	if fc.ResDir != "" {
		cfg.ResDir = fc.ResDir
	}
	if fc.StoreDir != "" {
		cfg.StoreDir = fc.StoreDir
	}
	if fc.Logo != "" {
		cfg.LogoPath = fc.Logo
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseColor accepts "#RGB", "#RRGGBB" or decimal "R,G,B".
func ParseColor(input string) (color.RGBA, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return color.RGBA{}, errors.New("empty color")
	}

	if hex, ok := strings.CutPrefix(input, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", input)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", input)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	}

	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", input)
	}
	var ch [3]uint8
	for i, s := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("invalid color %q", input)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{ch[0], ch[1], ch[2], 255}, nil
}
