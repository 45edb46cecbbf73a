// Package config loads the engine's on-disk configuration, adapted from
// the teacher's TOML-based settings loader and using the same
// github.com/BurntSushi/toml decoder and github.com/pkg/errors wrapping.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Boundary mirrors geom.Rect in a TOML-friendly shape (geom.Rect itself
// carries no struct tags, and the engine's core packages stay free of
// marshaling concerns).
type Boundary struct {
	X      float32 `toml:"x"`
	Y      float32 `toml:"y"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Adaptive mirrors quadtree.AdaptiveConfig.
type Adaptive struct {
	Enabled             bool    `toml:"enabled"`
	DensityThreshold    float32 `toml:"density_threshold"`
	CapacityMultiplier  float32 `toml:"capacity_multiplier"`
}

// NamedFilter is one entry of a TOML `[[filters]]` array of tables: a name
// to report in logs/output, and a scripting.CompilePredicate expression
// (see scripting.CompilePredicate) that the filter pipeline compiles and
// folds into a single quadtree.Filter predicate.
type NamedFilter struct {
	Name string `toml:"name"`
	Expr string `toml:"expr"`
}

// Config is the root configuration document for cmd/qtreedemo.
type Config struct {
	Boundary Boundary `toml:"boundary"`
	Capacity int      `toml:"capacity"`
	Adaptive Adaptive `toml:"adaptive"`
	LogLevel string   `toml:"log_level"`

	// Filters is a TOML list of named scripting.CompilePredicate
	// expressions; the filter pipeline ANDs them together into the single
	// predicate passed to quadtree.Filter (SPEC_FULL.md §4.9, §4.12).
	Filters []NamedFilter `toml:"filters"`

	// DBSCANEps, DBSCANMinPts, and MoranThreshold are the parameters
	// cmd/qtreedemo's dbscan/moran subcommands run with; the demo has no
	// command-line flags to override them.
	DBSCANEps      float32 `toml:"dbscan_eps"`
	DBSCANMinPts   int     `toml:"dbscan_min_pts"`
	MoranThreshold float32 `toml:"moran_threshold"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Boundary:       Boundary{X: 0, Y: 0, Width: 100, Height: 100},
		Capacity:       4,
		LogLevel:       "info",
		DBSCANEps:      5,
		DBSCANMinPts:   3,
		MoranThreshold: 0,
	}
}

// Load decodes a TOML document from path into a Config, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %q", path)
	}
	if cfg.Capacity <= 0 {
		return Config{}, errors.Errorf("config %q: capacity must be positive, got %d", path, cfg.Capacity)
	}
	return cfg, nil
}

// LoadString decodes a TOML document from a string, for tests and
// embedded default configurations.
func LoadString(doc string) (Config, error) {
	cfg := Default()
	_, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if cfg.Capacity <= 0 {
		return Config{}, errors.Errorf("config: capacity must be positive, got %d", cfg.Capacity)
	}
	return cfg, nil
}
