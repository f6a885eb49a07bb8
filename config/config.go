package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypertile/builder"
	"github.com/katalvlaran/hypertile/core"
	"github.com/katalvlaran/hypertile/geom"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "HYPERTILE_CONFIG"

// ErrInvalidConfig is returned for configurations that parse but make no
// sense (unknown names, negative sizes, malformed ids).
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Geometry GeometryConfig `yaml:"geometry" toml:"geometry"`
	Tiling   TilingConfig   `yaml:"tiling" toml:"tiling"`
	World    WorldConfig    `yaml:"world" toml:"world"`
	Explore  ExploreConfig  `yaml:"explore" toml:"explore"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// GeometryConfig selects the space. Name is any geom.Names() entry.
type GeometryConfig struct {
	Name        string `yaml:"name" toml:"name"`
	Affine      bool   `yaml:"affine" toml:"affine"`
	LieMovement bool   `yaml:"lie_movement" toml:"lie_movement"`

	// EmbeddedShift is one of "none", "both", "auto".
	EmbeddedShift string `yaml:"embedded_shift" toml:"embedded_shift"`
}

// TilingConfig is the regular tessellation laid on the geometry.
type TilingConfig struct {
	P             int     `yaml:"p" toml:"p"`
	Q             int     `yaml:"q" toml:"q"`
	LandscapeSeed *int64  `yaml:"landscape_seed" toml:"landscape_seed"`
	EuclidRadius  float64 `yaml:"euclid_radius" toml:"euclid_radius"`

	// LandscapeNoise is "perlin" (default) or "simplex".
	LandscapeNoise string `yaml:"landscape_noise" toml:"landscape_noise"`
}

// WorldConfig seeds the world. ID, when set, must be a UUID.
type WorldConfig struct {
	Seed int64  `yaml:"seed" toml:"seed"`
	ID   string `yaml:"id" toml:"id"`
}

// ExploreConfig bounds a listing around the origin.
type ExploreConfig struct {
	Radius   int `yaml:"radius" toml:"radius"`
	MaxCount int `yaml:"max_count" toml:"max_count"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{Name: "hyperbolic", EmbeddedShift: "none"},
		Tiling:   TilingConfig{P: 7, Q: 3},
		World:    WorldConfig{Seed: 1},
		Explore:  ExploreConfig{Radius: 3},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads the file at path: TOML when it ends in ".toml", YAML
// otherwise. An empty path falls back to $HYPERTILE_CONFIG and then to
// Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return Default(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTOML is Parse for TOML documents.
func ParseTOML(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that can be checked without building
// anything. Whether {p,q} fits the geometry is left to Regular.
func (c *Config) Validate() error {
	switch {
	case c.Tiling.P < 0 || c.Tiling.Q < 0:
		return fmt.Errorf("%w: tiling {%d,%d}", ErrInvalidConfig, c.Tiling.P, c.Tiling.Q)
	case c.Tiling.EuclidRadius < 0:
		return fmt.Errorf("%w: euclid_radius %v", ErrInvalidConfig, c.Tiling.EuclidRadius)
	case c.Explore.Radius < 0 || c.Explore.MaxCount < 0:
		return fmt.Errorf("%w: negative explore bound", ErrInvalidConfig)
	}
	if _, err := c.embeddedShift(); err != nil {
		return err
	}
	if _, err := c.landscape(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.World.ID != "" {
		if _, err := uuid.Parse(c.World.ID); err != nil {
			return fmt.Errorf("%w: world id: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c *Config) embeddedShift() (geom.EmbeddedShiftChoice, error) {
	switch strings.ToLower(c.Geometry.EmbeddedShift) {
	case "", "none":
		return geom.SMCNone, nil
	case "both":
		return geom.SMCBoth, nil
	case "auto":
		return geom.SMCAuto, nil
	}
	return 0, fmt.Errorf("%w: embedded_shift %q", ErrInvalidConfig, c.Geometry.EmbeddedShift)
}

func (c *Config) landscape() (builder.Landscape, error) {
	if c.Tiling.LandscapeSeed == nil {
		return builder.LandscapeNone, nil
	}
	switch strings.ToLower(c.Tiling.LandscapeNoise) {
	case "", "perlin":
		return builder.LandscapePerlin, nil
	case "simplex":
		return builder.LandscapeSimplex, nil
	}
	return 0, fmt.Errorf("%w: landscape_noise %q", ErrInvalidConfig, c.Tiling.LandscapeNoise)
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return l, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	l, err := c.level()
	if err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Geometry builds the configured geometry; extra options (typically
// geom.WithLogger) are applied after the configured ones.
func (c *Config) Geometry(extra ...geom.Option) (*geom.Geometry, error) {
	esc, err := c.embeddedShift()
	if err != nil {
		return nil, err
	}
	opts := []geom.Option{
		geom.WithEmbeddedShiftChoice(esc),
		geom.WithGeodesicMovement(!c.Geometry.LieMovement),
	}
	if c.Geometry.Affine {
		opts = append(opts, geom.WithAffine())
	}
	g, err := geom.ByName(c.Geometry.Name, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return g, nil
}

// WorldOptions are the core options described by the world section.
func (c *Config) WorldOptions() ([]core.WorldOption, error) {
	opts := []core.WorldOption{core.WithSeed(c.World.Seed)}
	if c.World.ID != "" {
		id, err := uuid.Parse(c.World.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: world id: %v", ErrInvalidConfig, err)
		}
		opts = append(opts, core.WithID(id))
	}
	return opts, nil
}

// Regular builds the configured tiling on g. Errors from the builder
// (unsupported geometry, {p,q} of the wrong curvature) are returned as is.
func (c *Config) Regular(g *geom.Geometry, extra ...builder.Option) (*builder.Tiling, error) {
	wopts, err := c.WorldOptions()
	if err != nil {
		return nil, err
	}
	land, err := c.landscape()
	if err != nil {
		return nil, err
	}
	opts := []builder.Option{builder.WithWorldOptions(wopts...)}
	if land != builder.LandscapeNone {
		opts = append(opts, builder.WithLandscapeNoise(land, *c.Tiling.LandscapeSeed))
	}
	if c.Tiling.EuclidRadius > 0 {
		opts = append(opts, builder.WithEuclidRadius(c.Tiling.EuclidRadius))
	}
	return builder.NewRegular(g, c.Tiling.P, c.Tiling.Q, append(opts, extra...)...)
}
