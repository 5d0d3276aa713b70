// Package envconfig provides configuration for tennis runs: the
// environment parameters shared by all courts and the physical and
// experimental settings of a run. Configurations in this package are
// JSON and YAML serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PolicyName names the policies that can drive a racket
type PolicyName string

// Policies available for configuration
const (
	Uniform   PolicyName = "Uniform"
	Heuristic PolicyName = "Heuristic"
	Idle      PolicyName = "Idle"
)

// Config implements a specific configuration of a tennis run
type Config struct {
	// Arenas is the number of independent courts run concurrently
	Arenas int `json:"arenas" yaml:"arenas"`

	// MaxSteps is the number of steps taken in each arena
	MaxSteps int `json:"max_steps" yaml:"max_steps"`

	// EpisodeCutoff ends episodes after this many steps, 0 disables it
	EpisodeCutoff int `json:"episode_cutoff" yaml:"episode_cutoff"`

	// PhysicsSteps is the number of physics steps per decision
	PhysicsSteps int     `json:"physics_steps" yaml:"physics_steps"`
	Discount     float64 `json:"discount" yaml:"discount"`
	Seed         uint64  `json:"seed" yaml:"seed"`

	LeftPolicy  PolicyName `json:"left_policy" yaml:"left_policy"`
	RightPolicy PolicyName `json:"right_policy" yaml:"right_policy"`

	// Parameters are the initial environment parameters, e.g. angle
	Parameters map[string]float64 `json:"parameters" yaml:"parameters"`

	LogLevel string `json:"log_level" yaml:"log_level"`

	// Output is the directory that episodic data is saved to. If empty,
	// no data is saved.
	Output string `json:"output" yaml:"output"`
}

// Default returns the default Config
func Default() Config {
	return Config{
		Arenas:        1,
		MaxSteps:      5_000,
		EpisodeCutoff: 1_000,
		PhysicsSteps:  1,
		Discount:      0.99,
		Seed:          1,
		LeftPolicy:    Uniform,
		RightPolicy:   Uniform,
		Parameters:    map[string]float64{},
		LogLevel:      "info",
	}
}

// Validate returns an error describing the first invalid field of c
func (c Config) Validate() error {
	if c.Arenas < 1 {
		return fmt.Errorf("validate: arenas must be positive but got %v",
			c.Arenas)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("validate: max steps must be positive but got %v",
			c.MaxSteps)
	}
	if c.EpisodeCutoff < 0 {
		return fmt.Errorf("validate: episode cutoff must be non-negative "+
			"but got %v", c.EpisodeCutoff)
	}
	if c.PhysicsSteps < 1 {
		return fmt.Errorf("validate: physics steps must be positive but "+
			"got %v", c.PhysicsSteps)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v ∉ [0, 1]", c.Discount)
	}
	for _, p := range []PolicyName{c.LeftPolicy, c.RightPolicy} {
		switch p {
		case Uniform, Heuristic, Idle:
		default:
			return fmt.Errorf("validate: no such policy %v", p)
		}
	}
	return nil
}

// Load reads a Config from a .json, .yaml, or .yml file. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not open config: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(file)
	case ".yaml", ".yml":
		return LoadYAML(file)
	default:
		return Config{}, fmt.Errorf("load: unknown config format %q", ext)
	}
}

// LoadJSON decodes a Config from JSON
func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("loadJSON: %w", err)
	}
	return c, c.Validate()
}

// LoadYAML decodes a Config from YAML
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("loadYAML: %w", err)
	}
	return c, c.Validate()
}

// NewParameters returns the parameter store described by the Config
func (c Config) NewParameters() *Parameters {
	return NewParameters(c.Parameters)
}
