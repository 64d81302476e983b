package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"phong-tracer/internal/raster"
)

// DefaultYAML is the scene rendered when no scene file is given.
//
//go:embed default.yaml
var DefaultYAML []byte

// Vec3 is an xyz triple as written in scene files.
type Vec3 [3]float64

// Config holds one scene and the settings used to render it.
type Config struct {
	Name   string `json:"name" yaml:"name"`
	Output string `json:"output" yaml:"output"`

	// Render settings
	OutputDir   string `json:"output_dir" yaml:"output_dir"`
	Format      string `json:"format" yaml:"format"`
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	Supersample int    `json:"supersample" yaml:"supersample"`
	Workers     int    `json:"workers" yaml:"workers"`

	// Scene
	Camera  CameraConfig   `json:"camera" yaml:"camera"`
	Light   LightConfig    `json:"light" yaml:"light"`
	Objects []ObjectConfig `json:"objects" yaml:"objects"`
}

type CameraConfig struct {
	FieldOfView float64 `json:"field_of_view" yaml:"field_of_view"` // radians
	From        Vec3    `json:"from" yaml:"from"`
	To          Vec3    `json:"to" yaml:"to"`
	Up          Vec3    `json:"up" yaml:"up"`
}

type LightConfig struct {
	Position  Vec3 `json:"position" yaml:"position"`
	Intensity Vec3 `json:"intensity" yaml:"intensity"`
}

type ObjectConfig struct {
	Name      string          `json:"name" yaml:"name"`
	Material  MaterialConfig  `json:"material" yaml:"material"`
	Transform []TransformStep `json:"transform" yaml:"transform"`
}

// MaterialConfig fields left out keep the material defaults.
type MaterialConfig struct {
	Color     *Vec3    `json:"color" yaml:"color"`
	Ambient   *float64 `json:"ambient" yaml:"ambient"`
	Diffuse   *float64 `json:"diffuse" yaml:"diffuse"`
	Specular  *float64 `json:"specular" yaml:"specular"`
	Shininess *float64 `json:"shininess" yaml:"shininess"`
}

// TransformStep is one affine operation. Steps apply in listed order.
type TransformStep struct {
	Op   string    `json:"op" yaml:"op"`
	Args []float64 `json:"args" yaml:"args"`
}

// Load reads a JSON or YAML scene file, chosen by extension.
// Fields not set in the file keep their zero values until Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Name == "" {
		base := filepath.Base(path)
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return cfg, nil
}

// Default returns the embedded default scene.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse default scene: %w", err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Resolve applies CLI overrides, then fills every unset render setting with
// its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Name == "" {
		c.Name = "scene"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		if ext := filepath.Ext(c.Output); ext != "" {
			c.Format = strings.TrimPrefix(ext, ".")
		} else {
			c.Format = string(raster.FormatPNG)
		}
	}
	if c.Width <= 0 {
		c.Width = 100
	}
	if c.Height <= 0 {
		c.Height = 50
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	// Camera defaults: 60 degree view down -z
	if c.Camera.FieldOfView == 0 {
		c.Camera.FieldOfView = math.Pi / 3
	}
	if c.Camera.From == c.Camera.To {
		c.Camera.From = Vec3{0, 0, -5}
		c.Camera.To = Vec3{0, 0, 0}
	}
	if c.Camera.Up == (Vec3{}) {
		c.Camera.Up = Vec3{0, 1, 0}
	}
	if c.Light.Intensity == (Vec3{}) {
		c.Light.Intensity = Vec3{1, 1, 1}
	}
}

// OutputPath is where the rendered frame is written. The extension always
// matches Format.
func (c *Config) OutputPath() string {
	name := c.Output
	if name == "" {
		name = c.Name
	}
	ext := "." + strings.ToLower(c.Format)
	if filepath.Ext(name) != ext {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ext
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}
