// Package config provides the cubemesh editor configuration.
//
// Config file locations (priority order):
//  1. $CUBEMESH_CONFIG
//  2. ./cubemesh.yaml
//  3. $XDG_CONFIG_HOME/cubemesh/config.yaml, or ~/.config/cubemesh/config.yaml if XDG_CONFIG_HOME is unset
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Version int           `yaml:"version"`
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Editor  EditorConfig  `yaml:"editor"`
	REPL    REPLConfig    `yaml:"repl"`
}

type LogConfig struct {
	Verbosity int   `yaml:"verbosity"`
	Color     *bool `yaml:"color,omitempty"`
}

type CatalogConfig struct {
	Path     string `yaml:"path"`      // empty for an in-memory catalog
	ReadOnly bool   `yaml:"read_only"` // requires Path
}

type REPLConfig struct {
	Startup string `yaml:"startup"` // python file run before the REPL prompt, if it exists
}

type EditorConfig struct {
	ViewHint []float64     `yaml:"view_hint,flow"` // direction new triangles face
	Atomic   bool          `yaml:"atomic"`         // restore the mesh if an editor function fails
	Box      BoxShape      `yaml:"box"`
	Plane    PlaneShape    `yaml:"plane"`
	Sphere   SphereShape   `yaml:"sphere"`
	Cylinder CylinderShape `yaml:"cylinder"`
	Arrow    ArrowShape    `yaml:"arrow"`
}

type BoxShape struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlaneShape struct {
	Size         float64 `yaml:"size"`
	USubdivision int     `yaml:"u_subdivision"`
	VSubdivision int     `yaml:"v_subdivision"`
}

type SphereShape struct {
	Radius       float64 `yaml:"radius"`
	USubdivision int     `yaml:"u_subdivision"`
	VSubdivision int     `yaml:"v_subdivision"`
}

type CylinderShape struct {
	Height      float64 `yaml:"height"`
	Radius      float64 `yaml:"radius"`
	Subdivision int     `yaml:"subdivision"`
}

type ArrowShape struct {
	Length   float64 `yaml:"length"`
	HeadSize float64 `yaml:"head_size"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, errors.Wrap(err, "parse config")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the defaults used when no config file is found
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Log.Color == nil {
		color := true
		c.Log.Color = &color
	}

	if c.REPL.Startup == "" {
		c.REPL.Startup = "lib/_REPL_startup.py"
	}

	e := &c.Editor
	if len(e.ViewHint) == 0 {
		e.ViewHint = []float64{0, 0, 1}
	}
	if e.Box == (BoxShape{}) {
		e.Box = BoxShape{2, 2, 2}
	}
	if e.Plane == (PlaneShape{}) {
		e.Plane = PlaneShape{2, 10, 10}
	}
	if e.Sphere == (SphereShape{}) {
		e.Sphere = SphereShape{2, 32, 16}
	}
	if e.Cylinder == (CylinderShape{}) {
		e.Cylinder = CylinderShape{2, 1, 32}
	}
	if e.Arrow == (ArrowShape{}) {
		e.Arrow = ArrowShape{3, 0.5}
	}
}

// Validate returns an error if the config cannot be used as is
func (c *Config) Validate() error {
	if c.Catalog.ReadOnly && c.Catalog.Path == "" {
		return errors.New("catalog.read_only requires catalog.path")
	}
	if len(c.Editor.ViewHint) != 3 {
		return errors.Errorf("editor.view_hint needs 3 components, got %d", len(c.Editor.ViewHint))
	}
	if c.ViewHint() == (vec3.T{}) {
		return errors.New("editor.view_hint must not be zero")
	}
	return nil
}

// ViewHint returns the direction newly connected triangles should face.
func (c *Config) ViewHint() vec3.T {
	var hint vec3.T
	copy(hint[:], c.Editor.ViewHint)
	return hint
}
